package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"folio/internal/delivery/http/middleware"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for the profile endpoints.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{uc: uc, logger: logger}
}

// updateProfileRequest defers decoding of both fields: a field that is absent
// or not a JSON string is simply not part of the patch. Only a patch where
// neither field is a string gets rejected, further down in the usecase.
type updateProfileRequest struct {
	Name   json.RawMessage `json:"name"`
	Mobile json.RawMessage `json:"mobile"`
}

// asString keeps the value only when it decodes as a JSON string.
func asString(raw json.RawMessage) *string {
	if len(raw) == 0 {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}

	return &s
}

// GetProfile returns the authenticated user's public view.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, user)
}

// UpdateProfile applies a partial update to the authenticated user's profile.
// Absent and non-string fields stay untouched; a patch where neither field
// carries a string is rejected.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return domainerrors.ErrInvalidToken
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrNothingToUpdate
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		Name:   asString(req.Name),
		Mobile: asString(req.Mobile),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, user)
}
