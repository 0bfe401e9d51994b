package mocks

import (
	"folio/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// TokenService is a mock implementation of service.TokenService.
type TokenService struct {
	mock.Mock
}

func (m *TokenService) IssueAccess(userID int64, email, sessionDuration string) (string, error) {
	args := m.Called(userID, email, sessionDuration)

	return args.String(0), args.Error(1)
}

func (m *TokenService) IssueRefresh(userID int64, email string) (string, error) {
	args := m.Called(userID, email)

	return args.String(0), args.Error(1)
}

func (m *TokenService) VerifyAccess(token string) (*service.Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}

func (m *TokenService) VerifyRefresh(token string) (*service.Claims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Claims), args.Error(1)
}
