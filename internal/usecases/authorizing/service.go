// Package authorizing valida o escopo de acesso ao painel. A emissão de
// credenciais fica fora daqui; o serviço só cunha e valida tokens de acesso
// por clínica.
package authorizing

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vfg2006/clinic-dashboard-api/internal/config"
	"github.com/vfg2006/clinic-dashboard-api/internal/domain"
)

var (
	ErrInvalidToken = errors.New("token inválido")
	ErrExpiredToken = errors.New("token expirado")
)

const tokenTTL = 24 * time.Hour

type Authorizer interface {
	GenerateToken(clinic *domain.Clinic) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authorizer {
	return &Service{cfg: cfg}
}

func (s *Service) GenerateToken(clinic *domain.Clinic) (string, error) {
	now := time.Now()
	claims := &domain.Claims{
		ClinicID: clinic.ID,
		Email:    clinic.Email,
		IsAdmin:  clinic.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   clinic.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
