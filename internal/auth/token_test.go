package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serviceAt(secret string, unix int64) *TokenService {
	ts := NewTokenService(secret)
	ts.now = func() time.Time { return time.Unix(unix, 0) }
	return ts
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	ts := serviceAt("test-secret", 1700000000)

	token, err := ts.Issue(5, 2, "alice", false)
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := ts.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(5), claims.SubjectID)
	assert.Equal(t, int64(2), claims.CustomerID)
	assert.Equal(t, "alice", claims.UserName)
	assert.False(t, claims.IsAdmin)
	assert.Equal(t, int64(1700000000), claims.IssuedAt)
	assert.Equal(t, int64(1700086400), claims.ExpiresAt)
}

func TestIssue_WireFormat(t *testing.T) {
	ts := serviceAt("test-secret", 1700000000)

	token, err := ts.Issue(5, 2, "alice", false)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	headerJSON, err := base64.RawURLEncoding.DecodeString(parts[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"alg":"HS256","typ":"JWT"}`, string(headerJSON))

	payloadJSON, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(payloadJSON, &payload))
	assert.EqualValues(t, 5, payload["userId"])
	assert.EqualValues(t, 2, payload["customerId"])
	assert.Equal(t, "alice", payload["userName"])
	assert.Equal(t, false, payload["isAdmin"])
	assert.EqualValues(t, 1700000000, payload["iat"])
	assert.EqualValues(t, 1700086400, payload["exp"])
}

func TestIssue_DifferentInstantsDifferentTokens(t *testing.T) {
	first, err := serviceAt("test-secret", 1700000000).Issue(1, 1, "bob", false)
	require.NoError(t, err)
	second, err := serviceAt("test-secret", 1700000001).Issue(1, 1, "bob", false)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	// Same instant, same input: issuance is deterministic.
	again, err := serviceAt("test-secret", 1700000000).Issue(1, 1, "bob", false)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestVerify_ExpiryBoundary(t *testing.T) {
	issuer := serviceAt("test-secret", 1700000000)
	token, err := issuer.Issue(5, 2, "alice", false)
	require.NoError(t, err)

	_, err = serviceAt("test-secret", 1700086399).Verify(token)
	assert.NoError(t, err, "one second before expiry must verify")

	_, err = serviceAt("test-secret", 1700086400).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken, "reaching expiry must reject")

	_, err = serviceAt("test-secret", 1700086401).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken, "past expiry must reject")
}

func TestVerify_TamperedSegments(t *testing.T) {
	ts := serviceAt("test-secret", 1700000000)
	token, err := ts.Issue(7, 3, "carol", true)
	require.NoError(t, err)

	verifier := serviceAt("test-secret", 1700000010)
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	for i := range parts {
		mutated := make([]string, 3)
		copy(mutated, parts)
		mutated[i] = flipChar(parts[i])
		_, err := verifier.Verify(strings.Join(mutated, "."))
		assert.ErrorIs(t, err, ErrInvalidToken, "segment %d mutation must reject", i)
	}
}

func flipChar(s string) string {
	b := []byte(s)
	if b[0] == 'A' {
		b[0] = 'B'
	} else {
		b[0] = 'A'
	}
	return string(b)
}

func TestVerify_KeySeparation(t *testing.T) {
	token, err := serviceAt("secret-a", 1700000000).Issue(1, 1, "dave", false)
	require.NoError(t, err)

	_, err = serviceAt("secret-b", 1700000010).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Malformed(t *testing.T) {
	verifier := serviceAt("test-secret", 1700000000)

	for _, token := range []string{
		"",
		"abc",
		"a.b",
		"a.b.c.d",
		"!!!.@@@.###",
	} {
		_, err := verifier.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestVerify_AdminClaims(t *testing.T) {
	ts := serviceAt("test-secret", 1700000000)
	token, err := ts.Issue(0, 0, "admin", true)
	require.NoError(t, err)

	claims, err := ts.Verify(token)
	require.NoError(t, err)
	assert.Zero(t, claims.SubjectID)
	assert.Zero(t, claims.CustomerID)
	assert.True(t, claims.IsAdmin)
}
