package utils

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-lists/models"
)

const testSignKey = "secret-key"

func TestGenerateJWTToken_MinimalClaims(t *testing.T) {
	token, err := GenerateJWTToken("user-1", testSignKey, "", 0)
	require.NoError(t, err)
	assert.Equal(t, "user-1", token.UserID)
	assert.NotEmpty(t, token.SignedString)

	claims := jwt.MapClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token.SignedString, claims)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims["_id"])
	assert.Contains(t, claims, "iat")
	assert.NotContains(t, claims, "iss")
	assert.NotContains(t, claims, "exp")
}

func TestGenerateJWTToken_IssuerAndExpiry(t *testing.T) {
	token, err := GenerateJWTToken("user-1", testSignKey, "lists", time.Hour)
	require.NoError(t, err)

	claims := &models.Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(token.SignedString, claims)
	require.NoError(t, err)

	assert.Equal(t, "lists", claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	_, err := GenerateJWTToken("user-1", "", "", 0)
	assert.ErrorIs(t, err, ErrEmptySignKey)

	_, err = GenerateJWTToken("", testSignKey, "", 0)
	assert.ErrorIs(t, err, ErrEmptyUserID)
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken("user-1", testSignKey, "lists", time.Hour)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, "lists", true)
	require.NoError(t, err)
	assert.Equal(t, "user-1", parsed.UserID)
	assert.Equal(t, issued.SignedString, parsed.SignedString)
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, err := GenerateJWTToken("user-1", testSignKey, "lists", time.Hour)
	require.NoError(t, err)

	noExpiry, err := GenerateJWTToken("user-1", testSignKey, "lists", 0)
	require.NoError(t, err)

	expired := signClaims(t, jwt.SigningMethodHS256, &models.Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	noUserID := signClaims(t, jwt.SigningMethodHS256, &models.Claims{})
	hs512 := signClaims(t, jwt.SigningMethodHS512, &models.Claims{UserID: "user-1"})
	unsigned := noneToken(t)

	tests := []struct {
		name          string
		token         string
		key           string
		issuer        string
		requireExpiry bool
		wantErr       error
	}{
		{name: "wrong key", token: valid.SignedString, key: "other", issuer: "lists", wantErr: jwt.ErrTokenSignatureInvalid},
		{name: "wrong issuer", token: valid.SignedString, key: testSignKey, issuer: "other", wantErr: jwt.ErrTokenInvalidIssuer},
		{name: "missing expiry", token: noExpiry.SignedString, key: testSignKey, issuer: "lists", requireExpiry: true, wantErr: jwt.ErrTokenRequiredClaimMissing},
		{name: "expired", token: expired, key: testSignKey, wantErr: jwt.ErrTokenExpired},
		{name: "no _id", token: noUserID, key: testSignKey, wantErr: ErrUserIDClaimNotFound},
		{name: "other hmac algorithm", token: hs512, key: testSignKey, wantErr: jwt.ErrTokenSignatureInvalid},
		{name: "alg none", token: unsigned, key: testSignKey, wantErr: jwt.ErrTokenSignatureInvalid},
		{name: "malformed", token: "not.a.jwt", key: testSignKey, wantErr: jwt.ErrTokenMalformed},
		{name: "empty key", token: valid.SignedString, key: "", wantErr: ErrEmptySignKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer, tt.requireExpiry)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestValidateAndParseJWTToken_IssuerIgnoredWhenNotConfigured(t *testing.T) {
	issued, err := GenerateJWTToken("user-1", testSignKey, "someone", 0)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, "", false)
	require.NoError(t, err)
	assert.Equal(t, "user-1", parsed.UserID)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Bearer ", wantErr: true},
		{header: "Basic dXNlcjpwYXNz", wantErr: true},
		{header: "JWT abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAuthHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUserIDFromJWT(t *testing.T) {
	issued, err := GenerateJWTToken("user-9", testSignKey, "", 0)
	require.NoError(t, err)

	id, err := ParseUserIDFromJWT(issued.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "user-9", id)

	_, err = ParseUserIDFromJWT("garbage")
	assert.Error(t, err)

	_, err = ParseUserIDFromJWT(signClaims(t, jwt.SigningMethodHS256, &models.Claims{}))
	assert.ErrorIs(t, err, ErrUserIDClaimNotFound)
}

func signClaims(t *testing.T, method jwt.SigningMethod, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)
	return s
}

func noneToken(t *testing.T) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodNone, &models.Claims{UserID: "user-1"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(s, "."))
	return s
}
