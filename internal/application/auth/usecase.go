package auth

import (
	"context"

	"github.com/premiarte/premiarte-api/internal/application/dto"
	"github.com/premiarte/premiarte-api/internal/domain"
	"github.com/premiarte/premiarte-api/internal/domain/entity"
	"github.com/premiarte/premiarte-api/internal/domain/repository"
	"github.com/premiarte/premiarte-api/pkg/jwt"
	"github.com/premiarte/premiarte-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// Vigencia del token de reseteo de clave, en minutos.
const resetTokenMinutes = 60

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// ResetMailer envía el correo con el link de reseteo de clave.
type ResetMailer interface {
	SendPasswordReset(ctx context.Context, email, name, token string) error
}

// AuthUseCase autenticación del panel: login y gestión de claves.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	mailer   ResetMailer
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, mailer ResetMailer, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, mailer: mailer, log: log}
}

// Login verifica email y clave, genera el JWT de sesión y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, jwt.PurposeSession, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// ForgotPassword emite un token de reseteo y lo envía por correo. La respuesta
// es la misma exista o no el email, para no revelar qué cuentas hay.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		uc.log.Info().Str("email", email).Msg("reseteo pedido para email desconocido")
		return nil
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, jwt.PurposeReset, uc.jwtCfg.Issuer, resetTokenMinutes)
	if err != nil {
		return err
	}
	if uc.mailer == nil {
		return nil
	}
	if err := uc.mailer.SendPasswordReset(ctx, user.Email, user.Name, token); err != nil {
		uc.log.Warn().Err(err).Str("email", user.Email).Msg("no se pudo enviar el correo de reseteo")
	}
	return nil
}

// ResetPassword cambia la clave a partir de un token de reseteo vigente.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, in dto.ResetPasswordRequest) error {
	if len(in.Password) < 8 {
		return domain.ErrInvalidInput
	}
	userID, purpose, err := jwt.Parse(uc.jwtCfg.Secret, in.Token)
	if err != nil || purpose != jwt.PurposeReset {
		return domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(user.ID, string(hash))
}

// ChangePassword cambia la clave del usuario autenticado verificando la actual.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID string, in dto.ChangePasswordRequest) error {
	if len(in.NewPassword) < 8 {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(user.ID, string(hash))
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
