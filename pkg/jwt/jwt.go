package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims claims estándar más los campos propios de la aplicación. Role viaja
// en el token para que el middleware RBAC decida sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id"`
	Role      string `json:"role"` // "admin" | "operator"
}

// Service firma y valida tokens HS256 con la configuración de la aplicación.
type Service struct {
	secret     string
	issuer     string
	expMinutes int
}

// NewService construye el servicio. El secret no puede estar vacío.
func NewService(secret, issuer string, expMinutes int) (*Service, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	if expMinutes <= 0 {
		expMinutes = 60
	}
	return &Service{secret: secret, issuer: issuer, expMinutes: expMinutes}, nil
}

// Generate emite un token firmado con userID, companyID y role.
func (s *Service) Generate(userID, companyID, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expMinutes) * time.Minute)),
		},
		UserID:    userID,
		CompanyID: companyID,
		Role:      role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// Parse valida firma y expiración y devuelve los claims.
func (s *Service) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
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
