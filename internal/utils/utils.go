package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// MaskFingerprint masks a participant fingerprint for logging (shows the
// first 3 and last 3 characters only)
func MaskFingerprint(fingerprint string) string {
	if len(fingerprint) > 6 {
		return fingerprint[:3] + "******" + fingerprint[len(fingerprint)-3:]
	}
	return "******"
}

// GenerateRandomString generates a random string of the specified length
func GenerateRandomString(length int) (string, error) {
	b := make([]byte, length)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b)[:length], nil
}
