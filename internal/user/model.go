package user

import "github.com/nekogravitycat/shareit-backend/internal/pkg/apperror"

var (
	ErrNotFound         = apperror.NotFound("User not found")
	ErrEmailAlreadyUsed = apperror.Conflict("Email already exists")
	ErrNameRequired     = apperror.InvalidArgument("Name is required")
	ErrEmailRequired    = apperror.InvalidArgument("Email is required")
)

// User represents a registered sharer.
type User struct {
	ID    int64
	Name  string
	Email string
}
