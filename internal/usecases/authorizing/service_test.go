package authorizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/clinic-dashboard-api/internal/config"
	"github.com/vfg2006/clinic-dashboard-api/internal/domain"
)

func newTestAuthorizer(secret string) Authorizer {
	return NewService(&config.Config{
		Auth: config.Auth{Secret: secret},
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	authorizer := newTestAuthorizer("segredo-de-teste")

	clinic := &domain.Clinic{
		ID:      "cl-001",
		Email:   "contato@clinicaexemplo.com.br",
		IsAdmin: false,
	}

	token, err := authorizer.GenerateToken(clinic)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := authorizer.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "cl-001", claims.ClinicID)
	assert.Equal(t, "contato@clinicaexemplo.com.br", claims.Email)
	assert.False(t, claims.IsAdmin)
	assert.Equal(t, "cl-001", claims.Subject)
}

func TestValidateToken_AssinadoComOutroSegredo(t *testing.T) {
	emissor := newTestAuthorizer("segredo-a")
	validador := newTestAuthorizer("segredo-b")

	token, err := emissor.GenerateToken(&domain.Clinic{ID: "cl-001"})
	require.NoError(t, err)

	claims, err := validador.ValidateToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_TokensInvalidos(t *testing.T) {
	authorizer := newTestAuthorizer("segredo-de-teste")

	tests := []struct {
		name  string
		token string
	}{
		{"Token vazio", ""},
		{"Texto arbitrário", "isto não é um jwt"},
		{"JWT truncado", "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJzdWIi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := authorizer.ValidateToken(tt.token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestGenerateToken_ClinicaAdministradora(t *testing.T) {
	authorizer := newTestAuthorizer("segredo-de-teste")

	token, err := authorizer.GenerateToken(&domain.Clinic{ID: "adm-01", IsAdmin: true})
	require.NoError(t, err)

	claims, err := authorizer.ValidateToken(token)
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
}
