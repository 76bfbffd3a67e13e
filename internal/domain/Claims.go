package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as informações do token de acesso. A camada de autorização só
// fornece o escopo (clínica + flag de admin) para os handlers; ela nunca
// participa do parsing das planilhas.
type Claims struct {
	ClinicID string `json:"clinic_id"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}
