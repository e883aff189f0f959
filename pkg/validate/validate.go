// Package validate holds the input format checks applied before any
// request is constructed. Malformed input never reaches the API client.
package validate

import "regexp"

var (
	mobileRe  = regexp.MustCompile(`^[6-9]\d{9}$`)
	emailRe   = regexp.MustCompile(`^[A-Z0-9a-z._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,64}$`)
	panRe     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	aadhaarRe = regexp.MustCompile(`^[0-9]{12}$`)
)

// MobileNumber accepts exactly 10 digits starting with 6-9.
func MobileNumber(s string) bool {
	return mobileRe.MatchString(s)
}

// Email accepts a conventional address shape.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// PAN accepts 5 uppercase letters, 4 digits, 1 uppercase letter.
func PAN(s string) bool {
	return panRe.MatchString(s)
}

// Aadhaar accepts exactly 12 digits.
func Aadhaar(s string) bool {
	return aadhaarRe.MatchString(s)
}
