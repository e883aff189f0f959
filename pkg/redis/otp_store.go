package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yogeshwar16/realestatehousing/pkg/crypto"
)

// ErrOTPMismatch covers both an unknown/expired code and a wrong code, so
// callers cannot probe which mobile numbers have a pending OTP.
var ErrOTPMismatch = errors.New("otp mismatch or expired")

// OTPStore keeps one pending OTP per mobile number in Redis. Codes are
// stored bcrypt-hashed with a TTL; saving a new code supersedes the prior
// one, and a successful verification consumes the code.
type OTPStore struct {
	expiry time.Duration
}

var (
	setOTPValue = Set
	getOTPValue = Get
	delOTPValue = Del
)

// NewOTPStore creates an OTP store with the given validity window.
func NewOTPStore(expiry time.Duration) *OTPStore {
	return &OTPStore{expiry: expiry}
}

// Save hashes and stores the code for the mobile number, replacing any
// pending code and restarting the validity window.
func (s *OTPStore) Save(ctx context.Context, mobileNumber, code string) error {
	hash, err := crypto.HashSecret(code)
	if err != nil {
		return err
	}
	return setOTPValue(ctx, otpKey(mobileNumber), hash, s.expiry)
}

// Verify checks the code against the pending hash and consumes it on
// success. Expired, absent, and wrong codes are indistinguishable.
func (s *OTPStore) Verify(ctx context.Context, mobileNumber, code string) error {
	hash, err := getOTPValue(ctx, otpKey(mobileNumber))
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return ErrOTPMismatch
		}
		return err
	}

	if !crypto.CheckSecret(code, hash) {
		return ErrOTPMismatch
	}

	return delOTPValue(ctx, otpKey(mobileNumber))
}

func otpKey(mobileNumber string) string {
	return "otp:" + mobileNumber
}
