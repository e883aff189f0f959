package entities

import "github.com/volatiletech/null/v8"

// SignupRequest registers a new account
type SignupRequest struct {
	FullName      string      `json:"full_name" binding:"required,min=2,max=100"`
	MobileNumber  string      `json:"mobile_number" binding:"required"`
	Email         string      `json:"email" binding:"required,email"`
	AadhaarNumber string      `json:"aadhaar_number" binding:"required"`
	PANCard       string      `json:"pan_card" binding:"required"`
	UserType      UserType    `json:"user_type" binding:"required"`
	Address       null.String `json:"address"`
}

// OTPRequest triggers an OTP send to a registered mobile number
type OTPRequest struct {
	MobileNumber string `json:"mobile_number" binding:"required"`
}

// LoginRequest exchanges mobile number + OTP for the user record
type LoginRequest struct {
	MobileNumber string `json:"mobile_number" binding:"required"`
	OTP          string `json:"otp" binding:"required"`
}

// UserUpdateRequest is a partial profile update. The mobile number is the
// lookup key and cannot be changed through this payload.
type UserUpdateRequest struct {
	FullName      string      `json:"full_name" binding:"required,min=2,max=100"`
	Email         string      `json:"email" binding:"required,email"`
	AadhaarNumber null.String `json:"aadhaar_number"`
	PANCard       null.String `json:"pan_card"`
	Address       null.String `json:"address"`
}

// PropertyRequest creates a new listing for a seller
type PropertyRequest struct {
	PropertyType   PropertyType `json:"property_type" binding:"required"`
	Title          string       `json:"title" binding:"required"`
	Description    string       `json:"description"`
	PropertySize   float64      `json:"property_size" binding:"required,gte=0"`
	Price          float64      `json:"price" binding:"required,gte=0"`
	Address        string       `json:"address" binding:"required"`
	City           string       `json:"city" binding:"required"`
	State          string       `json:"state" binding:"required"`
	Pincode        string       `json:"pincode" binding:"required"`
	Latitude       null.Float64 `json:"latitude"`
	Longitude      null.Float64 `json:"longitude"`
	PropertyImages null.String  `json:"property_images"`
	PTRDocument    null.String  `json:"ptr_document"`
}

// InquiryRequest raises an inquiry about a property
type InquiryRequest struct {
	PropertyID         int64       `json:"property_id" binding:"required"`
	InquiryDescription null.String `json:"inquiry_description"`
	TermsAccepted      bool        `json:"terms_accepted"`
}
