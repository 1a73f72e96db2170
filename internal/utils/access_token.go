package utils

import (
	"crypto/sha256"
	"errors"
	"io"
	"os"
	"time"

	jose "github.com/square/go-jose/v3"
	"github.com/square/go-jose/v3/jwt"
	"golang.org/x/crypto/hkdf"
)

type AccessTokenUtil struct{}

func NewAccessTokenUtil() *AccessTokenUtil {
	return &AccessTokenUtil{}
}

type TokenClaims struct {
	UserId string
	Email  string
}

type emailClaim struct {
	Email string `json:"email"`
}

// SignToken issues an HS256 JWS with sub/email claims. The signing key is
// derived from SECRET_JWT with HKDF rather than used raw.
func (u *AccessTokenUtil) SignToken(userId string, email string, expiresIn time.Duration) (string, error) {
	key, err := getDerivedSigningKey([]byte(os.Getenv("SECRET_JWT")))
	if err != nil {
		return "", err
	}

	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.HS256, Key: key},
		(&jose.SignerOptions{}).WithType("JWT"),
	)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.Claims{
		Subject:  userId,
		IssuedAt: jwt.NewNumericDate(now),
		Expiry:   jwt.NewNumericDate(now.Add(expiresIn)),
	}

	return jwt.Signed(signer).Claims(claims).Claims(emailClaim{Email: email}).CompactSerialize()
}

func (u *AccessTokenUtil) DecodeToken(token string) (*TokenClaims, error) {
	key, err := getDerivedSigningKey([]byte(os.Getenv("SECRET_JWT")))
	if err != nil {
		return nil, err
	}

	parsed, err := jwt.ParseSigned(token)
	if err != nil {
		return nil, err
	}

	var claims jwt.Claims
	var email emailClaim
	if err := parsed.Claims(key, &claims, &email); err != nil {
		return nil, err
	}

	if err := claims.Validate(jwt.Expected{Time: time.Now()}); err != nil {
		return nil, err
	}

	if claims.Subject == "" {
		return nil, errors.New("token subject is missing")
	}

	return &TokenClaims{
		UserId: claims.Subject,
		Email:  email.Email,
	}, nil
}

func getDerivedSigningKey(keyMaterial []byte) ([]byte, error) {
	info := []byte("budget-backend token signing key")
	h := hkdf.New(sha256.New, keyMaterial, nil, info)
	key := make([]byte, 32)
	if _, err := io.ReadFull(h, key); err != nil {
		return nil, err
	}
	return key, nil
}
