package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tipos de token emitidos por la API.
const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// ErrWrongTokenType se devuelve cuando se presenta un refresh token donde se espera uno de acceso (o viceversa).
var ErrWrongTokenType = errors.New("jwt: tipo de token incorrecto")

// Claims incluye los claims estándar más los campos de la aplicación.
// CompanyID puede ir vacío (super_admin o cliente_final sin empresa).
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id,omitempty"`
	Role      string `json:"role"`
	Type      string `json:"typ"`
}

// Subject identifica al portador del token.
type Subject struct {
	UserID    string
	CompanyID string
	Role      string
}

// Generate genera un token de acceso firmado con HS256.
func Generate(secret, userID, companyID, role, issuer string, expMinutes int) (string, error) {
	return sign(secret, Subject{UserID: userID, CompanyID: companyID, Role: role}, TypeAccess, issuer, expMinutes)
}

// GenerateRefresh genera un refresh token; solo sirve para /api/auth/refresh.
func GenerateRefresh(secret string, sub Subject, issuer string, expMinutes int) (string, error) {
	return sign(secret, sub, TypeRefresh, issuer, expMinutes)
}

func sign(secret string, sub Subject, typ, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   sub.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:    sub.UserID,
		CompanyID: sub.CompanyID,
		Role:      sub.Role,
		Type:      typ,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// Parse valida un token de acceso y devuelve userID, companyID y role.
func Parse(secret, tokenString string) (userID, companyID, role string, err error) {
	c, err := parseClaims(secret, tokenString)
	if err != nil {
		return "", "", "", err
	}
	if c.Type != "" && c.Type != TypeAccess {
		return "", "", "", ErrWrongTokenType
	}
	return c.UserID, c.CompanyID, c.Role, nil
}

// ParseRefresh valida un refresh token y devuelve su sujeto.
func ParseRefresh(secret, tokenString string) (Subject, error) {
	c, err := parseClaims(secret, tokenString)
	if err != nil {
		return Subject{}, err
	}
	if c.Type != TypeRefresh {
		return Subject{}, ErrWrongTokenType
	}
	return Subject{UserID: c.UserID, CompanyID: c.CompanyID, Role: c.Role}, nil
}

func parseClaims(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
