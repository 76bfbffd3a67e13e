package domain

import "time"

// ProcedureSale é uma linha da aba "Procedimentos": uma venda individual de
// procedimento com as datas de funil (primeiro contato, consulta comparecida,
// fechamento). As datas podem faltar ou estar fora de ordem; só o nome do
// procedimento é obrigatório para o registro ser persistido.
type ProcedureSale struct {
	ID               int        `json:"id"`
	ClinicID         string     `json:"clinic_id"`
	Procedure        string     `json:"procedure"`
	Category         string     `json:"category"`
	Quantity         int        `json:"quantity"`
	PaymentMethod    string     `json:"payment_method"`
	SaleValue        float64    `json:"sale_value"`
	InstallmentValue float64    `json:"installment_value"`
	FirstContactAt   *time.Time `json:"first_contact_at,omitempty"`
	AttendedAt       *time.Time `json:"attended_at,omitempty"`
	ClosedAt         *time.Time `json:"closed_at,omitempty"`
	ReferenceMonth   string     `json:"reference_month"`
	ReferenceYear    int        `json:"reference_year"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
