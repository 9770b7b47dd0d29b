package jwt

import (
	"errors"
	"time"

	"dsmovie/user"

	"github.com/golang-jwt/jwt"
)

type JWTProvider struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func NewJWTProvider(secret string, accessTTL, refreshTTL time.Duration) *JWTProvider {
	return &JWTProvider{
		Secret:     secret,
		AccessTTL:  accessTTL,
		RefreshTTL: refreshTTL,
	}
}

func (p *JWTProvider) GenerateAccessToken(u user.User) (string, error) {
	return p.signedToken(u, "access", p.AccessTTL)
}

func (p *JWTProvider) GenerateRefreshToken(u user.User) (string, error) {
	return p.signedToken(u, "refresh", p.RefreshTTL)
}

func (p *JWTProvider) signedToken(u user.User, tokenType string, ttl time.Duration) (string, error) {
	authorities := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		authorities[i] = r.Authority
	}

	claims := jwt.MapClaims{
		"username":    u.Username,
		"authorities": authorities,
		"type":        tokenType,
		"exp":         time.Now().Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(p.Secret))
}

func (p *JWTProvider) ParseRefreshToken(refreshToken string) (user.User, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(p.Secret), nil
	})
	if err != nil || !token.Valid {
		return user.User{}, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return user.User{}, errors.New("invalid token claims")
	}
	if err := claims.Valid(); err != nil {
		return user.User{}, errors.New("token expired")
	}

	if claimType, ok := claims["type"].(string); !ok || claimType != "refresh" {
		return user.User{}, errors.New("invalid token type")
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return user.User{}, errors.New("invalid username")
	}

	return user.User{
		Username: username,
	}, nil
}
