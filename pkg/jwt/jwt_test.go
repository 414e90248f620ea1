package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-jwt-secret")

func TestService_IssueThenVerify(t *testing.T) {
	svc := NewService(testSecret, time.Hour)
	userID := uuid.New()

	token, err := svc.Issue(userID, "Ann")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserUUID())
	assert.Equal(t, "Ann", claims.Name)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, claims.IssuedAt.Add(time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestService_DefaultTTL(t *testing.T) {
	svc := NewService(testSecret, 0)
	assert.Equal(t, DefaultTTL, svc.ttl)
}

func TestService_VerifyRejects(t *testing.T) {
	svc := NewService(testSecret, time.Hour)

	otherToken, err := NewService([]byte("another-secret"), time.Hour).Issue(uuid.New(), "Bob")
	require.NoError(t, err)

	noUserID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"name": "Bob",
		"iat":  time.Now().Unix(),
	}).SignedString(testSecret)
	require.NoError(t, err)

	badUserID, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "not-a-uuid",
		"name":   "Bob",
	}).SignedString(testSecret)
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"userId": uuid.NewString(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-token"},
		{name: "other secret", token: otherToken},
		{name: "missing userId", token: noUserID},
		{name: "malformed userId", token: badUserID},
		{name: "none algorithm", token: noneAlg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.Verify(tt.token)
			require.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestService_VerifyRejectsExpired(t *testing.T) {
	svc := NewService(testSecret, time.Minute)
	issuedAt := time.Now().Add(-time.Hour)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(uuid.New(), "Ann")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_VerifyEmptyToken(t *testing.T) {
	_, err := NewService(testSecret, time.Hour).Verify("")
	assert.ErrorIs(t, err, ErrMissingToken)
}
