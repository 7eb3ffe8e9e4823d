package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tdngo/gomarket-api/configs"
)

// Principal kinds carried in the "kind" claim.
const (
	KindUser = "user"
	KindShop = "shop"
)

var ErrInvalidToken = errors.New("invalid token")

type Tokens struct {
	cfg configs.Config
}

func NewTokens(cfg configs.Config) *Tokens {
	return &Tokens{cfg: cfg}
}

// Issue signs an HS256 token for an account id of the given kind.
func (t *Tokens) Issue(kind, id string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":  t.cfg.Security.Issuer,
		"sub":  id,
		"kind": kind,
		"iat":  now.Unix(),
		"nbf":  now.Unix(),
		"exp":  now.Add(t.cfg.Security.TTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(t.cfg.Security.JWTSecret))
}

// Parse validates a raw token and returns (kind, subject id).
func (t *Tokens) Parse(raw string) (string, string, error) {
	token, err := jwt.Parse(raw, func(tk *jwt.Token) (any, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(t.cfg.Security.JWTSecret), nil
	}, jwt.WithLeeway(30*time.Second)) // small clock skew
	if err != nil || !token.Valid {
		return "", "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", ErrInvalidToken
	}
	if claims["iss"] != t.cfg.Security.Issuer {
		return "", "", ErrInvalidToken
	}
	kind, _ := claims["kind"].(string)
	sub, _ := claims["sub"].(string)
	if kind == "" || sub == "" {
		return "", "", ErrInvalidToken
	}
	return kind, sub, nil
}
