// Package userrepo implements credential lookup for login. Users live outside
// the domain core; authentication is plumbing around it, so there is no
// domain aggregate here, just the row.
package userrepo

import (
	"context"
	"errors"

	"ostrack/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDTO is the database row for a login account. Role is the sector name
// the token will carry.
type UserDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username string    `gorm:"uniqueIndex;not null"`
	Password string    `gorm:"not null"`
	Role     string    `gorm:"not null"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// GormUserRepository reads login accounts.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// GetByUsername retrieves an account by its username.
func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (UserDTO, error) {
	if username == "" {
		return UserDTO{}, errs.NewValueIsRequiredError("username")
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserDTO{}, errs.NewObjectNotFoundError("username", username)
		}
		return UserDTO{}, err
	}

	return dto, nil
}
