package session

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// decodeExpiry extracts the exp claim from a JWT without verifying the
// signature. The monitor only schedules UI events from it; the server remains
// the sole authority on validity.
func decodeExpiry(token string) (time.Time, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return time.Time{}, errors.New("token is not a JWT")
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return time.Time{}, errors.Wrap(err, "failed to decode token payload")
	}

	var claims struct {
		Exp int64 `json:"exp"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return time.Time{}, errors.Wrap(err, "failed to parse token payload")
	}
	if claims.Exp == 0 {
		return time.Time{}, errors.New("token has no exp claim")
	}

	return time.Unix(claims.Exp, 0), nil
}
