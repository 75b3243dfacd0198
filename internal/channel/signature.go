package channel

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// SignatureHeader carries the webhook body signature.
const SignatureHeader = "X-Line-Signature"

// ValidateSignature checks the webhook body against the channel secret:
// base64(HMAC-SHA256(secret, body)), compared in constant time.
func ValidateSignature(secret string, body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
