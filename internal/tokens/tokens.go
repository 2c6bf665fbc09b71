package tokens

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/campusbridge/campusbridge/internal/config"
	"github.com/campusbridge/campusbridge/internal/guard"
	"github.com/campusbridge/campusbridge/internal/models"
)

// GenerateAccessToken creates a signed JWT access token carrying the caller's
// identity (user id, role, college) as claims.
func GenerateAccessToken(cfg *config.Config, u *models.User, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"role":  string(u.Role),
		"name":  u.Name,
		"email": u.Email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	}
	if u.CollegeID != "" {
		claims["collegeId"] = u.CollegeID
	}
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return jt.SignedString([]byte(cfg.JWT.Secret))
}

// Parser verifies access tokens and resolves them into identities. A
// malformed, expired, badly signed or role-less token comes back as
// guard.ErrUnauthorized without revealing which part of the credential was
// wrong.
type Parser struct {
	secret []byte
}

func NewParser(cfg *config.Config) *Parser {
	return &Parser{secret: []byte(cfg.JWT.Secret)}
}

// Parse verifies raw and returns the embedded identity.
func (p *Parser) Parse(ctx context.Context, raw string) (guard.Identity, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil || !tok.Valid {
		return guard.Identity{}, guard.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return guard.Identity{}, guard.ErrUnauthorized
	}
	sub, _ := claims["sub"].(string)
	roleStr, _ := claims["role"].(string)
	collegeID, _ := claims["collegeId"].(string)
	role := models.Role(roleStr)
	if sub == "" || !role.Valid() {
		return guard.Identity{}, guard.ErrUnauthorized
	}
	return guard.Identity{UserID: sub, Role: role, CollegeID: collegeID}, nil
}
