package entities

import (
	"encoding/json"

	"github.com/volatiletech/null/v8"
	domainerrors "github.com/yogeshwar16/realestatehousing/internal/domain/errors"
)

// UserType discriminates the two account roles
type UserType string

const (
	UserTypeSeller   UserType = "SELLER"
	UserTypeCustomer UserType = "CUSTOMER"
)

// ParseUserType maps a wire token to a UserType, rejecting anything
// outside the closed set.
func ParseUserType(token string) (UserType, error) {
	switch UserType(token) {
	case UserTypeSeller, UserTypeCustomer:
		return UserType(token), nil
	}
	return "", domainerrors.UnknownToken("user type", token)
}

func (t *UserType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseUserType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// User represents a marketplace account. The mobile number doubles as the
// login credential and is immutable once registered.
type User struct {
	UserID        null.Int64  `json:"user_id"`
	FullName      string      `json:"full_name"`
	MobileNumber  string      `json:"mobile_number"`
	Email         string      `json:"email"`
	AadhaarNumber null.String `json:"aadhaar_number"`
	PANCard       null.String `json:"pan_card"`
	UserType      UserType    `json:"user_type"`
	Address       null.String `json:"address"`
	IsActive      null.Bool   `json:"is_active"`
	CreatedAt     null.Time   `json:"created_at"`
	UpdatedAt     null.Time   `json:"updated_at"`
}

// IsSeller reports whether the account can list properties.
func (u *User) IsSeller() bool {
	return u.UserType == UserTypeSeller
}

// IsCustomer reports whether the account can raise inquiries.
func (u *User) IsCustomer() bool {
	return u.UserType == UserTypeCustomer
}
