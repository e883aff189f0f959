package entities

import (
	"encoding/json"

	"github.com/volatiletech/null/v8"
	domainerrors "github.com/yogeshwar16/realestatehousing/internal/domain/errors"
)

// InquiryStatus discriminates the inquiry lifecycle states
type InquiryStatus string

const (
	InquiryStatusOpen       InquiryStatus = "OPEN"
	InquiryStatusInProgress InquiryStatus = "IN_PROGRESS"
	InquiryStatusClosed     InquiryStatus = "CLOSED"
	InquiryStatusExpired    InquiryStatus = "EXPIRED"
)

// ParseInquiryStatus maps a wire token to an InquiryStatus, rejecting
// anything outside the closed set.
func ParseInquiryStatus(token string) (InquiryStatus, error) {
	switch InquiryStatus(token) {
	case InquiryStatusOpen, InquiryStatusInProgress, InquiryStatusClosed, InquiryStatusExpired:
		return InquiryStatus(token), nil
	}
	return "", domainerrors.UnknownToken("inquiry status", token)
}

func (s *InquiryStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseInquiryStatus(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Inquiry is a customer's request about a property. Its effective lifetime
// is three months from creation; past expiry_date the backend flips the
// status to EXPIRED.
type Inquiry struct {
	ID                 null.Int64    `json:"id"`
	Property           *Property     `json:"property,omitempty"`
	Customer           *User         `json:"customer,omitempty"`
	Seller             *User         `json:"seller,omitempty"`
	InquiryDescription null.String   `json:"inquiry_description"`
	Status             InquiryStatus `json:"status"`
	TermsAccepted      bool          `json:"terms_accepted"`
	CreatedAt          null.Time     `json:"created_at"`
	UpdatedAt          null.Time     `json:"updated_at"`
	ExpiryDate         null.Time     `json:"expiry_date"`
}
