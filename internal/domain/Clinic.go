package domain

import "time"

// Clinic representa uma clínica (tenant) cadastrada no painel.
// Cada clínica é dona exclusiva dos seus registros mensais e de procedimentos.
type Clinic struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	CNPJ            *string    `json:"cnpj,omitempty"`
	Phone           *string    `json:"phone,omitempty"`
	SpreadsheetLink *string    `json:"spreadsheet_link,omitempty"`
	Active          bool       `json:"active"`
	IsAdmin         bool       `json:"is_admin"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty"`
}

// HasSpreadsheet indica se a clínica tem um link de planilha configurado
func (c *Clinic) HasSpreadsheet() bool {
	return c.SpreadsheetLink != nil && *c.SpreadsheetLink != ""
}
