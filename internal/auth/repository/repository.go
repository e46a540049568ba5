package repository

import authdomain "virtualgrow-server/internal/auth/domain"

// UserRepository defines the credential store contract. Lookups that find
// nothing return (nil, nil); only store failures return an error.
type UserRepository interface {
	Create(user *authdomain.User) error
	FindByEmail(email string) (*authdomain.User, error)
	FindByID(id string) (*authdomain.User, error)
	FindByRefreshToken(token string) (*authdomain.User, error)
	Update(user *authdomain.User) error
	Delete(id string) error
}
