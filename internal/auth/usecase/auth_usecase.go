package usecase

import (
	"context"
	"log"
	"time"

	authdomain "virtualgrow-server/internal/auth/domain"
	authdto "virtualgrow-server/internal/auth/dto"
	"virtualgrow-server/internal/auth/repository"
	"virtualgrow-server/internal/notification"
	"virtualgrow-server/pkg/config"
	"virtualgrow-server/pkg/crypto"
	"virtualgrow-server/pkg/token"

	"github.com/google/uuid"
)

// authUsecase implements AuthUsecase
type authUsecase struct {
	userRepo repository.UserRepository
	hasher   *crypto.Hasher
	tokens   *token.Issuer
	mailer   notification.Mailer
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, hasher *crypto.Hasher, tokens *token.Issuer, mailer notification.Mailer, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		mailer:   mailer,
		config:   cfg,
	}
}

func (u *authUsecase) SignUp(req *authdto.SignupRequest) (*authdomain.User, error) {
	// Advisory check; the unique index on email is the authority of last
	// resort under concurrent signups.
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := u.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Email:          req.Email,
		PasswordHash:   hash,
		Name:           req.Name,
		Age:            req.Age,
		Location:       req.Location,
		PhotoURL:       req.Photo,
		ExteriorPlants: req.ExteriorPlants,
		InteriorPlants: req.InteriorPlants,
	}

	if err := u.userRepo.Create(user); err != nil {
		// Lost a race against another signup for the same email.
		if existing, ferr := u.userRepo.FindByEmail(req.Email); ferr == nil && existing != nil {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !u.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := u.tokens.IssueAccess(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	refreshToken, err := u.tokens.IssueRefresh(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	// Single active session: a new login overwrites any prior refresh token.
	user.RefreshToken = refreshToken
	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func (u *authUsecase) RefreshAccessToken(refreshToken string) (string, error) {
	claims, err := u.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return "", ErrInvalidToken
	}

	user, err := u.userRepo.FindByID(claims.UserID)
	if err != nil {
		return "", err
	}

	// A valid signature is not enough: a logout or a newer login supersedes
	// the token, so it must also match the stored value.
	if user == nil || user.RefreshToken != refreshToken {
		return "", ErrTokenRevoked
	}

	return u.tokens.IssueAccess(user.ID, user.Email)
}

func (u *authUsecase) Logout(refreshToken string) error {
	user, err := u.userRepo.FindByRefreshToken(refreshToken)
	if err != nil {
		return err
	}
	if user == nil {
		// Already revoked or never issued; nothing further to do.
		return nil
	}

	user.RefreshToken = ""
	return u.userRepo.Update(user)
}

func (u *authUsecase) ForgotPassword(email string) error {
	user, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	resetToken := uuid.New().String()
	expiry := time.Now().Add(u.config.ResetTokenExpiry)
	user.ResetToken = resetToken
	user.ResetTokenExpiry = &expiry
	if err := u.userRepo.Update(user); err != nil {
		return err
	}

	if err := u.mailer.SendPasswordReset(context.Background(), user.Email, resetToken); err != nil {
		log.Printf("[Auth] Failed to send reset email to %s: %v", user.Email, err)
		return err
	}

	return nil
}

func (u *authUsecase) ResetPassword(req *authdto.ResetPasswordRequest) error {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return err
	}

	// The presented token must equal the stored one and still be live; an
	// expiry-only check would let anyone knowing the email reset it.
	if user == nil || user.ResetToken == "" || user.ResetToken != req.ResetToken {
		return ErrResetInvalid
	}
	if user.ResetTokenExpiry == nil || user.ResetTokenExpiry.Before(time.Now()) {
		return ErrResetInvalid
	}

	hash, err := u.hasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	user.ResetToken = ""
	user.ResetTokenExpiry = nil
	return u.userRepo.Update(user)
}

func (u *authUsecase) Profile(userID string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (u *authUsecase) DeleteAccount(userID string) error {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return u.userRepo.Delete(user.ID)
}
