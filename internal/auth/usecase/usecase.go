package usecase

import (
	"errors"

	authdomain "virtualgrow-server/internal/auth/domain"
	authdto "virtualgrow-server/internal/auth/dto"
)

// Sentinel outcomes of the auth flows. The HTTP layer maps these to status
// codes; anything else is an internal error and surfaces as a generic 500.
var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenRevoked       = errors.New("refresh token has been revoked")
	ErrResetInvalid       = errors.New("invalid or expired password reset request")
)

// AuthUsecase orchestrates signup, login, refresh, logout and the
// password-reset lifecycle.
type AuthUsecase interface {
	SignUp(req *authdto.SignupRequest) (*authdomain.User, error)
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)
	RefreshAccessToken(refreshToken string) (string, error)
	Logout(refreshToken string) error
	ForgotPassword(email string) error
	ResetPassword(req *authdto.ResetPasswordRequest) error
	Profile(userID string) (*authdomain.User, error)
	DeleteAccount(userID string) error
}
