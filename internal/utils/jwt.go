package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-user-lists/models"
)

var (
	ErrEmptySignKey        = errors.New("empty token sign key")
	ErrEmptyUserID         = errors.New("empty user id")
	ErrInvalidAuthHeader   = errors.New("invalid authorization header")
	ErrUserIDClaimNotFound = errors.New("token has no _id claim")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for userID.
//
// The token always carries the "_id" and "iat" claims. The "iss" claim is
// added when issuer is non-empty and "exp" when tokenDuration is positive.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("0195...", "secret", "", 0)
func GenerateJWTToken(userID, signKey, issuer string, tokenDuration time.Duration) (models.Token, error) {
	if signKey == "" {
		return models.Token{}, ErrEmptySignKey
	}
	if userID == "" {
		return models.Token{}, ErrEmptyUserID
	}

	now := time.Now()
	claims := &models.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if tokenDuration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(tokenDuration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken verifies tokenString and extracts the user id.
//
// Validation includes:
//   - HS256 signature check with signKey (other algorithms are rejected)
//   - "iss" equal to issuer, when issuer is non-empty
//   - "exp" presence, when requireExpiry is set, and "exp" in the future
//     whenever the claim is present
//   - a non-empty "_id" claim
func ValidateAndParseJWTToken(tokenString, signKey, issuer string, requireExpiry bool) (models.Token, error) {
	if signKey == "" {
		return models.Token{}, ErrEmptySignKey
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if requireExpiry {
		opts = append(opts, jwt.WithExpirationRequired())
	}

	claims := &models.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.UserID == "" {
		return models.Token{}, ErrUserIDClaimNotFound
	}

	return models.Token{SignedString: tokenString, UserID: claims.UserID}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", ErrInvalidAuthHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidAuthHeader
	}

	return token, nil
}

// ParseUserIDFromJWT reads the "_id" claim without verifying the signature.
// It is meant for clients that only need to display who a token belongs to.
func ParseUserIDFromJWT(tokenString string) (string, error) {
	claims := &models.Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return "", err
	}

	if claims.UserID == "" {
		return "", ErrUserIDClaimNotFound
	}

	return claims.UserID, nil
}
