package repositories

import (
	"context"

	"github.com/yogeshwar16/realestatehousing/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id int64) (*entities.User, error)
	GetByMobileNumber(ctx context.Context, mobile string) (*entities.User, error)
	ExistsByIdentity(ctx context.Context, mobile, aadhaar, pan string) (bool, error)
	Update(ctx context.Context, user *entities.User) error
}
