package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"

	"github.com/GlebRadaev/gigledger/internal/domain"
)

const issuer = "gigledger"

type JWTServiceInterface interface {
	GenerateJWT(userID uuid.UUID, role domain.Role, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// Claims carry the identity supplied by the upstream auth service.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

func (c *Claims) Caller() (domain.Caller, error) {
	id, err := uuid.Parse(c.UserID)
	if err != nil {
		return domain.Caller{}, err
	}
	return domain.Caller{UserID: id, Role: domain.Role(c.Role)}, nil
}

type JWTService struct {
	secretKey []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secretKey: []byte(secret)}
}

func (s *JWTService) GenerateJWT(userID uuid.UUID, role domain.Role, expirationTime time.Time) (string, error) {
	claims := Claims{
		UserID: userID.String(),
		Role:   string(role),
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == "" || claims.Issuer != issuer {
		return nil, errors.New("invalid token claims")
	}
	switch domain.Role(claims.Role) {
	case domain.RoleBuyer, domain.RoleSeller, domain.RoleOperator:
	default:
		return nil, errors.New("invalid token role")
	}

	return claims, nil
}
