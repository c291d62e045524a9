package testutil

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"
)

// AccessToken builds an unsigned JWT carrying the backend's access-token
// claims. Good enough for code paths that only decode the payload.
func AccessToken(t testing.TB, username string, groups []string, exp time.Time) string {
	t.Helper()

	payload := map[string]any{
		"username": username,
		"groups":   groups,
		"exp":      exp.Unix(),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal token payload: %v", err)
	}

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	return header + "." + base64.RawURLEncoding.EncodeToString(body) + ".sig"
}

// StringPtr returns a pointer to the given string value.
func StringPtr(s string) *string {
	return &s
}

// BoolPtr returns a pointer to the given bool value.
func BoolPtr(b bool) *bool {
	return &b
}

// IntPtr returns a pointer to the given int value.
func IntPtr(i int) *int {
	return &i
}
