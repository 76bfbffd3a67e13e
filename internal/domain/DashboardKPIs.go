package domain

// DashboardKPIs são os indicadores consolidados de um conjunto de meses.
// Todos os percentuais e razões são derivados dos totais somados do período,
// nunca da média dos percentuais mensais (média de percentuais com volumes
// desiguais distorce o resultado).
type DashboardKPIs struct {
	TotalLeads                 int     `json:"total_leads"`
	TotalConsultationsSchedule int     `json:"total_consultations_scheduled"`
	TotalConsultationsAttended int     `json:"total_consultations_attended"`
	TotalClosings              int     `json:"total_closings"`
	TotalRevenue               float64 `json:"total_revenue"`
	TotalSpend                 float64 `json:"total_spend"`

	ConvScheduledOverLeads    float64 `json:"conv_scheduled_over_leads"`
	ConvAttendedOverScheduled float64 `json:"conv_attended_over_scheduled"`
	ConvClosingsOverAttended  float64 `json:"conv_closings_over_attended"`
	ConvClosingsOverLeads     float64 `json:"conv_closings_over_leads"`

	ROAS             float64 `json:"roas"`
	CostPerLead      float64 `json:"cost_per_lead"`
	CostPerScheduled float64 `json:"cost_per_scheduled"`
	CostPerAttended  float64 `json:"cost_per_attended"`
	CostPerClosing   float64 `json:"cost_per_closing"`
	AverageTicket    float64 `json:"average_ticket"`
}
