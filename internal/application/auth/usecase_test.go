package auth

import (
	"context"
	"testing"

	"github.com/premiarte/premiarte-api/internal/application/dto"
	"github.com/premiarte/premiarte-api/internal/domain"
	"github.com/premiarte/premiarte-api/internal/domain/entity"
	"github.com/premiarte/premiarte-api/internal/domain/repository"
	"github.com/premiarte/premiarte-api/pkg/jwt"
	"github.com/premiarte/premiarte-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) { return f.users[id], nil }

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List() ([]*entity.User, error) { return nil, nil }
func (f *fakeUserRepo) Update(u *entity.User) error   { return nil }

func (f *fakeUserRepo) UpdatePassword(id, hash string) error {
	if u, ok := f.users[id]; ok {
		u.PasswordHash = hash
	}
	return nil
}

func (f *fakeUserRepo) Delete(id string) error { return nil }

type fakeResetMailer struct {
	tokens []string
}

func (f *fakeResetMailer) SendPasswordReset(ctx context.Context, email, name, token string) error {
	f.tokens = append(f.tokens, token)
	return nil
}

func newAuthFixture(t *testing.T) (*AuthUseCase, *fakeUserRepo, *fakeResetMailer) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("clave-segura"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"u1": {ID: "u1", Name: "Admin", Email: "admin@premiarte.com", PasswordHash: string(hash)},
	}}
	mailer := &fakeResetMailer{}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	uc := NewAuthUseCase(repo, JWTConfig{Secret: "secreto", ExpMinutes: 60, Issuer: "test"}, mailer, log)
	return uc, repo, mailer
}

func TestLogin(t *testing.T) {
	uc, _, _ := newAuthFixture(t)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@premiarte.com",
		Password: "clave-segura",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "u1", resp.User.ID)

	userID, purpose, err := jwt.Parse("secreto", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, jwt.PurposeSession, purpose)
}

func TestLoginWrongPassword(t *testing.T) {
	uc, _, _ := newAuthFixture(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@premiarte.com",
		Password: "otra",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoginUnknownEmail(t *testing.T) {
	uc, _, _ := newAuthFixture(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@premiarte.com",
		Password: "clave-segura",
	})
	// Mismo error que clave incorrecta: no se revela si la cuenta existe.
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestForgotAndResetPassword(t *testing.T) {
	uc, repo, mailer := newAuthFixture(t)

	require.NoError(t, uc.ForgotPassword(context.Background(), "admin@premiarte.com"))
	require.Len(t, mailer.tokens, 1)

	err := uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Token:    mailer.tokens[0],
		Password: "clave-nueva-123",
	})
	require.NoError(t, err)

	err = bcrypt.CompareHashAndPassword([]byte(repo.users["u1"].PasswordHash), []byte("clave-nueva-123"))
	assert.NoError(t, err)
}

func TestForgotPasswordUnknownEmailSilent(t *testing.T) {
	uc, _, mailer := newAuthFixture(t)

	require.NoError(t, uc.ForgotPassword(context.Background(), "nadie@premiarte.com"))
	assert.Empty(t, mailer.tokens)
}

func TestResetPasswordRejectsSessionToken(t *testing.T) {
	uc, _, _ := newAuthFixture(t)

	session, err := jwt.Generate("secreto", "u1", jwt.PurposeSession, "test", 60)
	require.NoError(t, err)

	err = uc.ResetPassword(context.Background(), dto.ResetPasswordRequest{
		Token:    session,
		Password: "clave-nueva-123",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestChangePassword(t *testing.T) {
	uc, repo, _ := newAuthFixture(t)

	err := uc.ChangePassword(context.Background(), "u1", dto.ChangePasswordRequest{
		CurrentPassword: "clave-segura",
		NewPassword:     "clave-nueva-123",
	})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.users["u1"].PasswordHash), []byte("clave-nueva-123")))

	err = uc.ChangePassword(context.Background(), "u1", dto.ChangePasswordRequest{
		CurrentPassword: "incorrecta",
		NewPassword:     "da-igual-esta",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
