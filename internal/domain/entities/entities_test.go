package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	domainerrors "github.com/yogeshwar16/realestatehousing/internal/domain/errors"
)

func TestParseUserType(t *testing.T) {
	got, err := ParseUserType("SELLER")
	require.NoError(t, err)
	assert.Equal(t, UserTypeSeller, got)

	got, err = ParseUserType("CUSTOMER")
	require.NoError(t, err)
	assert.Equal(t, UserTypeCustomer, got)

	_, err = ParseUserType("seller")
	assert.ErrorIs(t, err, domainerrors.ErrUnknownToken)

	_, err = ParseUserType("ADMIN")
	assert.ErrorIs(t, err, domainerrors.ErrUnknownToken)
}

func TestParsePropertyType(t *testing.T) {
	for _, token := range []string{"LAND", "FLAT", "ROW_HOUSE", "BUNGALOW"} {
		got, err := ParsePropertyType(token)
		require.NoError(t, err)
		assert.Equal(t, PropertyType(token), got)
	}

	_, err := ParsePropertyType("CASTLE")
	assert.ErrorIs(t, err, domainerrors.ErrUnknownToken)
}

func TestParseInquiryStatus(t *testing.T) {
	for _, token := range []string{"OPEN", "IN_PROGRESS", "CLOSED", "EXPIRED"} {
		got, err := ParseInquiryStatus(token)
		require.NoError(t, err)
		assert.Equal(t, InquiryStatus(token), got)
	}

	_, err := ParseInquiryStatus("open")
	assert.ErrorIs(t, err, domainerrors.ErrUnknownToken)
}

func TestEnumUnmarshal_RejectsUnknownToken(t *testing.T) {
	var u User
	err := json.Unmarshal([]byte(`{"full_name":"A","mobile_number":"9876543210","email":"a@b.in","user_type":"MODERATOR"}`), &u)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownToken)

	var p Property
	err = json.Unmarshal([]byte(`{"title":"t","property_type":"row_house"}`), &p)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownToken)

	var i Inquiry
	err = json.Unmarshal([]byte(`{"status":"PENDING","terms_accepted":true}`), &i)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownToken)
}

func TestUser_WireRoundTrip(t *testing.T) {
	now := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
	u := User{
		UserID:        null.Int64From(42),
		FullName:      "Asha Patil",
		MobileNumber:  "9876543210",
		Email:         "asha@example.in",
		AadhaarNumber: null.StringFrom("123412341234"),
		PANCard:       null.StringFrom("ABCDE1234F"),
		UserType:      UserTypeSeller,
		IsActive:      null.BoolFrom(true),
		CreatedAt:     null.TimeFrom(now),
		UpdatedAt:     null.TimeFrom(now),
	}

	raw, err := json.Marshal(u)
	require.NoError(t, err)

	// snake_case keys and uppercase enum token on the wire
	assert.Contains(t, string(raw), `"mobile_number":"9876543210"`)
	assert.Contains(t, string(raw), `"user_type":"SELLER"`)
	assert.Contains(t, string(raw), `"pan_card":"ABCDE1234F"`)

	var back User
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, u, back)
}

func TestUser_NullAndAbsentAreEquivalent(t *testing.T) {
	withNull := []byte(`{"full_name":"A","mobile_number":"9876543210","email":"a@b.in","user_type":"CUSTOMER","address":null,"aadhaar_number":null}`)
	absent := []byte(`{"full_name":"A","mobile_number":"9876543210","email":"a@b.in","user_type":"CUSTOMER"}`)

	var a, b User
	require.NoError(t, json.Unmarshal(withNull, &a))
	require.NoError(t, json.Unmarshal(absent, &b))
	assert.Equal(t, a, b)
	assert.False(t, a.Address.Valid)
	assert.False(t, a.AadhaarNumber.Valid)
}

func TestProperty_OwnedBy(t *testing.T) {
	p := &Property{Seller: &User{UserID: null.Int64From(7)}}
	assert.True(t, p.OwnedBy(7))
	assert.False(t, p.OwnedBy(8))

	assert.False(t, (&Property{}).OwnedBy(7))
	assert.False(t, (&Property{Seller: &User{}}).OwnedBy(0))
}

func TestUser_RoleHelpers(t *testing.T) {
	seller := &User{UserType: UserTypeSeller}
	customer := &User{UserType: UserTypeCustomer}
	assert.True(t, seller.IsSeller())
	assert.False(t, seller.IsCustomer())
	assert.True(t, customer.IsCustomer())
	assert.False(t, customer.IsSeller())
}

func TestInquiry_WireShape(t *testing.T) {
	raw := []byte(`{
		"id": 3,
		"inquiry_description": "Is the plot fenced?",
		"status": "IN_PROGRESS",
		"terms_accepted": true,
		"expiry_date": "2026-05-10T09:30:00Z"
	}`)
	var inq Inquiry
	require.NoError(t, json.Unmarshal(raw, &inq))
	assert.Equal(t, int64(3), inq.ID.Int64)
	assert.Equal(t, InquiryStatusInProgress, inq.Status)
	assert.True(t, inq.TermsAccepted)
	assert.True(t, inq.ExpiryDate.Valid)
}
