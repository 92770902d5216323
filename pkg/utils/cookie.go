package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Session cookies carry "<token>.<signature>" where the signature is an
// HMAC-SHA256 of the token under SECRET_KEY. The database lookup still
// decides validity; the signature only rejects forged cookies early.

func SignSessionToken(token, secret string) string {
	return token + "." + computeSignature(token, secret)
}

// VerifySessionToken checks the signature and returns the bare token.
func VerifySessionToken(signed, secret string) (string, error) {
	token, sig, found := strings.Cut(signed, ".")
	if !found || token == "" || sig == "" {
		return "", fmt.Errorf("malformed session cookie")
	}

	expected := computeSignature(token, secret)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", fmt.Errorf("session cookie signature mismatch")
	}

	return token, nil
}

func computeSignature(token, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}
