package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-form/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUser = models.User{UserID: 123, Email: "john.doe@auth.gr"}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", testUser, time.Hour, "secret-key")

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, token.SignedString, token.String())
	require.NotNil(t, token.Token)

	claims, ok := token.Token.Claims.(*authClaims)
	require.True(t, ok, "claims must be authClaims")
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.Equal(t, "123", claims.Subject)
	assert.Equal(t, "john.doe@auth.gr", claims.Email)
	assert.Equal(t, int64(123), token.UserID)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"negative duration", "iss", -time.Second, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, testUser, tt.duration, tt.key)
			assert.ErrorIs(t, err, ErrInvalidTokenParams)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, err := GenerateJWTToken("test-issuer", testUser, 5*time.Minute, "secret-key")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "test-issuer")

	require.NoError(t, err)
	assert.Equal(t, testUser.UserID, parsed.UserID)
	assert.Equal(t, testUser.Email, parsed.Email)

	userID, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, testUser.UserID, userID)
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, err := GenerateJWTToken("test-issuer", testUser, time.Hour, "correct-key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &authClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			Subject:   "1",
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Minute)),
		},
	}).SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(raw, "key", "test-issuer")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, err := GenerateJWTToken("real-issuer", testUser, time.Hour, "key")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer")
	assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	assert.Error(t, err)
}

func TestParseUnverifiedJWT(t *testing.T) {
	genToken, err := GenerateJWTToken("iss", testUser, time.Hour, "server-only-key")
	require.NoError(t, err)

	parsed, err := ParseUnverifiedJWT(genToken.SignedString)

	require.NoError(t, err)
	assert.Equal(t, testUser.UserID, parsed.UserID)
	assert.Equal(t, testUser.Email, parsed.Email)
}

func TestParseUnverifiedJWT_NonNumericSubject(t *testing.T) {
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &authClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "john"},
	}).SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = ParseUnverifiedJWT(raw)
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer  token ", want: "token"},
		{header: "Bearer", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
