package domain

import "time"

// Meses canônicos em português, na ordem do calendário. Os rótulos das colunas
// das planilhas das clínicas precisam bater exatamente com estes tokens.
var Months = [12]string{
	"Janeiro",
	"Fevereiro",
	"Março",
	"Abril",
	"Maio",
	"Junho",
	"Julho",
	"Agosto",
	"Setembro",
	"Outubro",
	"Novembro",
	"Dezembro",
}

// MonthNumber retorna o ordinal (1-12) de um nome de mês canônico.
// Qualquer outro rótulo retorna (0, false).
func MonthNumber(name string) (int, bool) {
	for i, m := range Months {
		if m == name {
			return i + 1, true
		}
	}
	return 0, false
}

// MonthlyMetrics é o registro normalizado de um mês de operação de uma clínica,
// produzido pelo pivô da tabela larga ("Controle de Leads"). Existe no máximo um
// registro por (clínica, mês, ano) após uma sincronização bem-sucedida.
type MonthlyMetrics struct {
	ID       int    `json:"id"`
	ClinicID string `json:"clinic_id"`
	Month    string `json:"month"`
	Year     int    `json:"year"`

	// Leads por canal
	LeadsTotal            int `json:"leads_total"`
	LeadsGoogleAds        int `json:"leads_google_ads"`
	LeadsMetaAds          int `json:"leads_meta_ads"`
	LeadsInstagramOrganic int `json:"leads_instagram_organic"`
	LeadsReferral         int `json:"leads_referral"`
	LeadsUnknownOrigin    int `json:"leads_unknown_origin"`

	// Consultas marcadas por canal
	ConsultationsScheduledTotal     int `json:"consultations_scheduled_total"`
	ConsultationsScheduledGoogleAds int `json:"consultations_scheduled_google_ads"`
	ConsultationsScheduledMetaAds   int `json:"consultations_scheduled_meta_ads"`
	ConsultationsScheduledIGOrganic int `json:"consultations_scheduled_ig_organic"`
	ConsultationsScheduledReferral  int `json:"consultations_scheduled_referral"`
	ConsultationsScheduledOther     int `json:"consultations_scheduled_other"`

	// Consultas comparecidas
	ConsultationsAttended int `json:"consultations_attended"`

	// Fechamentos (protocolos/cirurgias) por canal
	ClosingsTotal     int `json:"closings_total"`
	ClosingsGoogleAds int `json:"closings_google_ads"`
	ClosingsMetaAds   int `json:"closings_meta_ads"`
	ClosingsIGOrganic int `json:"closings_ig_organic"`
	ClosingsReferral  int `json:"closings_referral"`
	ClosingsOther     int `json:"closings_other"`

	// Valores financeiros
	Revenue               float64 `json:"revenue"`
	TotalSpend            float64 `json:"total_spend"`
	PlannedBudgetTotal    float64 `json:"planned_budget_total"`
	RealizedSpendFacebook float64 `json:"realized_spend_facebook"`
	PlannedSpendFacebook  float64 `json:"planned_spend_facebook"`
	RealizedSpendGoogle   float64 `json:"realized_spend_google"`
	PlannedSpendGoogle    float64 `json:"planned_spend_google"`

	// Percentuais de conversão como preenchidos na planilha. Os KPIs exibidos
	// no painel são recalculados a partir dos totais, nunca destes campos.
	ConvScheduledOverLeads    float64 `json:"conv_scheduled_over_leads"`
	ConvAttendedOverScheduled float64 `json:"conv_attended_over_scheduled"`
	ConvClosingsOverAttended  float64 `json:"conv_closings_over_attended"`
	ConvClosingsOverLeads     float64 `json:"conv_closings_over_leads"`

	// KPIs financeiros como preenchidos na planilha
	CostPerClosing   float64 `json:"cost_per_closing"`
	ROAS             float64 `json:"roas"`
	CostPerLead      float64 `json:"cost_per_lead"`
	CostPerScheduled float64 `json:"cost_per_scheduled"`
	CostPerAttended  float64 `json:"cost_per_attended"`
	AverageTicket    float64 `json:"average_ticket"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasActivity indica se o mês teve alguma movimentação relevante. Meses sem
// atividade são válidos, mas normalmente filtrados pelos consumidores.
func (m *MonthlyMetrics) HasActivity() bool {
	return m.LeadsTotal > 0 || m.Revenue > 0 || m.TotalSpend > 0
}
