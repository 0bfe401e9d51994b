package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"folio/internal/delivery/http/middleware"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/service"
	"folio/internal/mocks"
	"folio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProfileTestServer(t *testing.T, uc usecase.ProfileUsecase, tokenSvc service.TokenService) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	h := NewProfileHandler(uc, logger)
	authMW := middleware.NewAuthMiddleware(tokenSvc)
	group := e.Group("/api/user")
	group.Use(authMW.Authenticate)
	group.GET("/profile", h.GetProfile)
	group.PATCH("/profile", h.UpdateProfile)

	return e
}

func authedRequest(method, path, body, token string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	return req
}

func TestProfileHandler_GetProfile_Success(t *testing.T) {
	uc := &mocks.ProfileUsecase{}
	tokenSvc := &mocks.TokenService{}
	tokenSvc.On("VerifyAccess", "valid").Return(&service.Claims{UserID: 7, Email: "a@b.c"}, nil)
	uc.On("GetProfile", mock.Anything, int64(7)).
		Return(&entity.PublicUser{ID: 7, Email: "a@b.c", Name: "A", Mobile: "0911"}, nil)

	e := newProfileTestServer(t, uc, tokenSvc)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/user/profile", "", "valid"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":7,"email":"a@b.c","name":"A","mobile":"0911","createdAt":"0001-01-01T00:00:00Z"}`, rec.Body.String())
}

func TestProfileHandler_MissingAndInvalidTokenResponses(t *testing.T) {
	uc := &mocks.ProfileUsecase{}
	tokenSvc := &mocks.TokenService{}
	tokenSvc.On("VerifyAccess", mock.Anything).Return(nil, errors.New("invalid or expired token"))

	e := newProfileTestServer(t, uc, tokenSvc)

	tests := []struct {
		name     string
		token    string
		wantBody string
	}{
		{name: "no token", token: "", wantBody: `{"error":"No token provided."}`},
		{name: "expired token", token: "expired", wantBody: `{"error":"Invalid token."}`},
		{name: "tampered token", token: "tampered", wantBody: `{"error":"Invalid token."}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/user/profile", "", tt.token))

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
	uc.AssertNotCalled(t, "GetProfile")
}

func TestProfileHandler_UpdateProfile_Partial(t *testing.T) {
	uc := &mocks.ProfileUsecase{}
	tokenSvc := &mocks.TokenService{}
	tokenSvc.On("VerifyAccess", "valid").Return(&service.Claims{UserID: 7, Email: "a@b.c"}, nil)

	name := "Renamed"
	uc.On("UpdateProfile", mock.Anything, int64(7), &usecase.UpdateProfileInput{Name: &name}).
		Return(&entity.PublicUser{ID: 7, Email: "a@b.c", Name: "Renamed", Mobile: "0911"}, nil)

	e := newProfileTestServer(t, uc, tokenSvc)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, authedRequest(http.MethodPatch, "/api/user/profile", `{"name":"Renamed"}`, "valid"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Renamed"`)
	assert.Contains(t, rec.Body.String(), `"mobile":"0911"`)
}

func TestProfileHandler_UpdateProfile_NonStringFieldIsIgnored(t *testing.T) {
	uc := &mocks.ProfileUsecase{}
	tokenSvc := &mocks.TokenService{}
	tokenSvc.On("VerifyAccess", "valid").Return(&service.Claims{UserID: 7, Email: "a@b.c"}, nil)

	mobile := "0999"
	uc.On("UpdateProfile", mock.Anything, int64(7), &usecase.UpdateProfileInput{Mobile: &mobile}).
		Return(&entity.PublicUser{ID: 7, Email: "a@b.c", Name: "A", Mobile: "0999"}, nil)

	e := newProfileTestServer(t, uc, tokenSvc)
	rec := httptest.NewRecorder()
	// A non-string name is not part of the patch; the string mobile still lands.
	e.ServeHTTP(rec, authedRequest(http.MethodPatch, "/api/user/profile", `{"name":5,"mobile":"0999"}`, "valid"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"mobile":"0999"`)
	uc.AssertExpectations(t)
}

func TestProfileHandler_UpdateProfile_AllNonStringFieldsRejected(t *testing.T) {
	uc := &mocks.ProfileUsecase{}
	tokenSvc := &mocks.TokenService{}
	tokenSvc.On("VerifyAccess", "valid").Return(&service.Claims{UserID: 7, Email: "a@b.c"}, nil)
	uc.On("UpdateProfile", mock.Anything, int64(7), &usecase.UpdateProfileInput{}).
		Return(nil, domainerrors.ErrNothingToUpdate)

	e := newProfileTestServer(t, uc, tokenSvc)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, authedRequest(http.MethodPatch, "/api/user/profile", `{"name":5,"mobile":null}`, "valid"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Nothing to update."}`, rec.Body.String())
}

func TestProfileHandler_LowercaseBearerSchemeAccepted(t *testing.T) {
	uc := &mocks.ProfileUsecase{}
	tokenSvc := &mocks.TokenService{}
	tokenSvc.On("VerifyAccess", "valid").Return(&service.Claims{UserID: 7, Email: "a@b.c"}, nil)
	uc.On("GetProfile", mock.Anything, int64(7)).
		Return(&entity.PublicUser{ID: 7, Email: "a@b.c"}, nil)

	e := newProfileTestServer(t, uc, tokenSvc)
	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.Header.Set(echo.HeaderAuthorization, "bearer valid")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestProfileHandler_UpdateProfile_NothingToUpdate(t *testing.T) {
	uc := &mocks.ProfileUsecase{}
	tokenSvc := &mocks.TokenService{}
	tokenSvc.On("VerifyAccess", "valid").Return(&service.Claims{UserID: 7, Email: "a@b.c"}, nil)
	uc.On("UpdateProfile", mock.Anything, int64(7), &usecase.UpdateProfileInput{}).
		Return(nil, domainerrors.ErrNothingToUpdate)

	e := newProfileTestServer(t, uc, tokenSvc)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, authedRequest(http.MethodPatch, "/api/user/profile", `{}`, "valid"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Nothing to update."}`, rec.Body.String())
}

func TestProfileHandler_GetProfile_UserGone(t *testing.T) {
	uc := &mocks.ProfileUsecase{}
	tokenSvc := &mocks.TokenService{}
	tokenSvc.On("VerifyAccess", "valid").Return(&service.Claims{UserID: 99, Email: "gone@b.c"}, nil)
	uc.On("GetProfile", mock.Anything, int64(99)).Return(nil, domainerrors.ErrUserNotFound)

	e := newProfileTestServer(t, uc, tokenSvc)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, authedRequest(http.MethodGet, "/api/user/profile", "", "valid"))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"User not found."}`, rec.Body.String())
}
