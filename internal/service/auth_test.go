package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alzin/sham-al-aqar-syria/pkg/customerror"
	modelsUser "github.com/alzin/sham-al-aqar-syria/pkg/user"
)

type fakeUserRepo struct {
	byEmail map[string]*modelsUser.User
	byId    map[uuid.UUID]*modelsUser.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: map[string]*modelsUser.User{},
		byId:    map[uuid.UUID]*modelsUser.User{},
	}
}

func (repo *fakeUserRepo) CreateTables(ctx context.Context) error { return nil }

func (repo *fakeUserRepo) GetUser(ctx context.Context, id uuid.UUID) (*modelsUser.User, error) {
	user, ok := repo.byId[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (repo *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*modelsUser.User, error) {
	user, ok := repo.byEmail[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (repo *fakeUserRepo) InsertUser(ctx context.Context, user *modelsUser.User) error {
	if _, ok := repo.byEmail[user.Email]; ok {
		return customerror.ErrUserAlreadyExists
	}
	repo.byEmail[user.Email] = user
	repo.byId[user.UUID] = user
	return nil
}

func (repo *fakeUserRepo) UpdateProfile(ctx context.Context, userId uuid.UUID, profile *modelsUser.Profile) error {
	user, ok := repo.byId[userId]
	if !ok {
		return pgx.ErrNoRows
	}
	user.Profile = *profile
	return nil
}

func (repo *fakeUserRepo) BumpJWTVersion(ctx context.Context, userId uuid.UUID) error {
	user, ok := repo.byId[userId]
	if !ok {
		return pgx.ErrNoRows
	}
	user.JWTVersion++
	return nil
}

func TestSignUpThenSignIn(t *testing.T) {
	repo := newFakeUserRepo()
	authService := NewAuthService(repo, "localhost", "8080")

	created, err := authService.SignUp("ali@example.com", "s3cret-password", "علي", "الأحمد", "+963 944 123 456")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.UUID)
	assert.NotEqual(t, "s3cret-password", created.PasswordHash)
	assert.Equal(t, "علي", created.Profile.FirstName)

	signedIn, err := authService.SignIn("ali@example.com", "s3cret-password")
	require.NoError(t, err)
	assert.Equal(t, created.UUID, signedIn.UUID)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	authService := NewAuthService(repo, "localhost", "8080")

	_, err := authService.SignUp("ali@example.com", "first", "", "", "")
	require.NoError(t, err)

	_, err = authService.SignUp("ali@example.com", "second", "", "", "")
	assert.ErrorIs(t, err, customerror.ErrUserAlreadyExists)
}

func TestSignInWrongCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	authService := NewAuthService(repo, "localhost", "8080")

	_, err := authService.SignUp("ali@example.com", "right-password", "", "", "")
	require.NoError(t, err)

	_, err = authService.SignIn("ali@example.com", "wrong-password")
	assert.ErrorIs(t, err, customerror.ErrWrongCredentials)

	_, err = authService.SignIn("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, customerror.ErrWrongCredentials)
}

func TestSignOutBumpsTokenVersion(t *testing.T) {
	repo := newFakeUserRepo()
	authService := NewAuthService(repo, "localhost", "8080")

	created, err := authService.SignUp("ali@example.com", "s3cret", "", "", "")
	require.NoError(t, err)
	before := created.JWTVersion

	require.NoError(t, authService.SignOut(created.UUID))
	assert.Equal(t, before+1, repo.byId[created.UUID].JWTVersion)

	assert.ErrorIs(t, authService.SignOut(uuid.New()), pgx.ErrNoRows)
}
