package impl

import "folio/internal/domain/entity"

// buildNewUser assembles a user entity ready for persistence. ID and
// CreatedAt are filled in by the store.
func buildNewUser(email, passwordHash, name, mobile string) *entity.User {
	return &entity.User{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		Mobile:       mobile,
	}
}
