package sqlite

import (
	"context"
	"testing"

	"folio/internal/domain/entity"
	"folio/internal/domain/repository"
	"folio/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) (repository.UserRepository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.UserModel{}))

	return NewUserRepository(db), db
}

func TestUserRepository_CreateAssignsID(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	user := &entity.User{Email: "a@example.com", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, user))

	assert.NotZero(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserRepository_DuplicateEmailKeepsSingleRow(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	first := &entity.User{Email: "dup@example.com", PasswordHash: "hash1"}
	require.NoError(t, repo.Create(ctx, first))

	second := &entity.User{Email: "dup@example.com", PasswordHash: "hash2"}
	err := repo.Create(ctx, second)

	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrEmailTaken)

	var count int64
	require.NoError(t, db.Model(&model.UserModel{}).Where("email = ?", "dup@example.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// The surviving row is the first writer's.
	found, err := repo.FindByEmail(ctx, "dup@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hash1", found.PasswordHash)
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.FindByEmail(context.Background(), "missing@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_FindByID_ReturnsPublicView(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	user := &entity.User{Email: "a@example.com", PasswordHash: "hash", Name: "A", Mobile: "0911"}
	require.NoError(t, repo.Create(ctx, user))

	public, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)

	assert.Equal(t, user.ID, public.ID)
	assert.Equal(t, "a@example.com", public.Email)
	assert.Equal(t, "A", public.Name)
	assert.Equal(t, "0911", public.Mobile)
}

func TestUserRepository_UpdateProfile_Partial(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	user := &entity.User{Email: "a@example.com", PasswordHash: "hash", Name: "Old", Mobile: "0911"}
	require.NoError(t, repo.Create(ctx, user))

	name := "New"
	updated, err := repo.UpdateProfile(ctx, user.ID, repository.ProfileUpdate{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "New", updated.Name)
	// The omitted field keeps its stored value.
	assert.Equal(t, "0911", updated.Mobile)
}

func TestUserRepository_UpdateProfile_MissingUser(t *testing.T) {
	repo, _ := newTestRepo(t)

	name := "New"
	_, err := repo.UpdateProfile(context.Background(), 9999, repository.ProfileUpdate{Name: &name})

	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
