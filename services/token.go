package services

import (
	"errors"
	"fmt"
	"time"

	"carediary/model"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenIssuer   = "carediary"
	typeAccess    = "access"
	typeShareLink = "share"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Type string `json:"type"`
	Date string `json:"date,omitempty"`
	jwt.RegisteredClaims
}

// TokenService signs access tokens and read-only share links with HS256
type TokenService struct {
	secret       []byte
	accessTTL    time.Duration
	shareLinkTTL time.Duration
	now          func() time.Time
}

func NewTokenService(secret string, accessTTL, shareLinkTTL time.Duration) *TokenService {
	return &TokenService{
		secret:       []byte(secret),
		accessTTL:    accessTTL,
		shareLinkTTL: shareLinkTTL,
		now:          time.Now,
	}
}

func (s *TokenService) GenerateAccessToken() (string, time.Time, error) {
	return s.sign(typeAccess, "", s.accessTTL)
}

// GenerateShareLink signs a token that opens the summary of one day
func (s *TokenService) GenerateShareLink(dateKey string) (string, time.Time, error) {
	if !model.IsValidDateKey(dateKey) {
		return "", time.Time{}, fmt.Errorf("%w: bad date %q", ErrInvalidToken, dateKey)
	}
	return s.sign(typeShareLink, dateKey, s.shareLinkTTL)
}

func (s *TokenService) ValidateAccessToken(token string) error {
	_, err := s.parse(token, typeAccess)
	return err
}

// ValidateShareLink returns the date the link was issued for
func (s *TokenService) ValidateShareLink(token string) (string, error) {
	claims, err := s.parse(token, typeShareLink)
	if err != nil {
		return "", err
	}
	if !model.IsValidDateKey(claims.Date) {
		return "", ErrInvalidToken
	}
	return claims.Date, nil
}

func (s *TokenService) sign(tokenType, date string, ttl time.Duration) (string, time.Time, error) {
	now := s.now()
	expires := now.Add(ttl)
	claims := Claims{
		Type: tokenType,
		Date: date,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

func (s *TokenService) parse(token, wantType string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Type != wantType {
		return nil, fmt.Errorf("%w: wrong token type", ErrInvalidToken)
	}
	return claims, nil
}
