package repositories

import (
	"context"
	"time"

	"github.com/yogeshwar16/realestatehousing/internal/domain/entities"
)

// InquiryRepository defines inquiry operations
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entities.Inquiry) error
	GetByID(ctx context.Context, id int64) (*entities.Inquiry, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]entities.Inquiry, error)
	// ListExpired returns open or in-progress inquiries whose expiry date
	// has passed as of the given instant.
	ListExpired(ctx context.Context, asOf time.Time) ([]entities.Inquiry, error)
	MarkExpired(ctx context.Context, ids []int64) error
}
