package sqlite

import (
	"context"

	"folio/internal/domain/entity"
	"folio/internal/domain/repository"
	"folio/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository on the sqlite store.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create inserts the user and fills in the store-assigned ID. Duplicate emails
// surface as repository.ErrEmailTaken via the unique index, so concurrent
// signups with the same email cannot both succeed.
func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	row := model.UserModel{
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Name:         user.Name,
		Mobile:       user.Mobile,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrEmailTaken, user.Email)
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.ID = row.ID
	user.CreatedAt = row.CreatedAt

	return nil
}

// FindByEmail returns the full user record including the password hash, for
// credential verification.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var row model.UserModel
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(repository.ErrUserNotFound, email)
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toEntity(&row), nil
}

// FindByID returns the public view of a user, without the password hash.
func (r *userRepository) FindByID(ctx context.Context, id int64) (*entity.PublicUser, error) {
	var row model.UserModel
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toEntity(&row).Public(), nil
}

// UpdateProfile applies a partial update. Nil fields keep their stored value,
// matching COALESCE semantics in SQL.
func (r *userRepository) UpdateProfile(ctx context.Context, id int64, update repository.ProfileUpdate) (*entity.PublicUser, error) {
	values := map[string]any{}
	if update.Name != nil {
		values["name"] = *update.Name
	}
	if update.Mobile != nil {
		values["mobile"] = *update.Mobile
	}

	result := r.db.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update user profile")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrUserNotFound
	}

	return r.FindByID(ctx, id)
}

func toEntity(row *model.UserModel) *entity.User {
	return &entity.User{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Name:         row.Name,
		Mobile:       row.Mobile,
		CreatedAt:    row.CreatedAt,
	}
}
