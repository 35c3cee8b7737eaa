package utils

import (
	"crypto/rand"
	"fmt"
)

func GenerateOTP() string {
	// Generate a 4-digit OTP
	var number [1]byte
	rand.Read(number[:])
	return fmt.Sprintf("%04d", int(number[0])%10000)
}

// GenerateBookingCode returns a short human-readable booking reference.
func GenerateBookingCode() string {
	var b [4]byte
	rand.Read(b[:])
	return fmt.Sprintf("%X", b)
}
