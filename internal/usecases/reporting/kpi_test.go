package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vfg2006/clinic-dashboard-api/internal/domain"
)

func TestSafeRatio(t *testing.T) {
	tests := []struct {
		name     string
		a        float64
		b        float64
		expected float64
	}{
		{"Divisão normal", 10, 4, 2.5},
		{"Denominador zero", 10, 0, 0},
		{"Numerador zero", 0, 10, 0},
		{"Ambos zero", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SafeRatio(tt.a, tt.b), 0.001)
		})
	}
}

func TestConsolidate(t *testing.T) {
	metrics := []*domain.MonthlyMetrics{
		{
			Month:                       "Janeiro",
			LeadsTotal:                  100,
			ConsultationsScheduledTotal: 40,
			ConsultationsAttended:       30,
			ClosingsTotal:               10,
			Revenue:                     50000,
			TotalSpend:                  5000,
		},
		{
			Month:                       "Fevereiro",
			LeadsTotal:                  200,
			ConsultationsScheduledTotal: 60,
			ConsultationsAttended:       45,
			ClosingsTotal:               15,
			Revenue:                     70000,
			TotalSpend:                  7000,
		},
	}

	kpis := Consolidate(metrics)

	assert.Equal(t, 300, kpis.TotalLeads)
	assert.Equal(t, 100, kpis.TotalConsultationsSchedule)
	assert.Equal(t, 75, kpis.TotalConsultationsAttended)
	assert.Equal(t, 25, kpis.TotalClosings)
	assert.InDelta(t, 120000, kpis.TotalRevenue, 0.001)
	assert.InDelta(t, 12000, kpis.TotalSpend, 0.001)

	assert.InDelta(t, 33.33, kpis.ConvScheduledOverLeads, 0.001)
	assert.InDelta(t, 75.00, kpis.ConvAttendedOverScheduled, 0.001)
	assert.InDelta(t, 33.33, kpis.ConvClosingsOverAttended, 0.001)
	assert.InDelta(t, 8.33, kpis.ConvClosingsOverLeads, 0.001)

	assert.InDelta(t, 10.00, kpis.ROAS, 0.001)
	assert.InDelta(t, 40.00, kpis.CostPerLead, 0.001)
	assert.InDelta(t, 120.00, kpis.CostPerScheduled, 0.001)
	assert.InDelta(t, 160.00, kpis.CostPerAttended, 0.001)
	assert.InDelta(t, 480.00, kpis.CostPerClosing, 0.001)
	assert.InDelta(t, 4800.00, kpis.AverageTicket, 0.001)
}

// Os percentuais saem dos totais somados, não da média dos percentuais
// mensais. Um mês com 10 leads não pode pesar o mesmo que um mês com 1000.
func TestConsolidate_RazaoDosTotaisNaoMediaDosMeses(t *testing.T) {
	metrics := []*domain.MonthlyMetrics{
		{Month: "Janeiro", LeadsTotal: 10, ConsultationsScheduledTotal: 1},
		{Month: "Fevereiro", LeadsTotal: 1000, ConsultationsScheduledTotal: 200},
	}

	kpis := Consolidate(metrics)

	// 201/1010 = 19,9%; a média das taxas mensais (10% e 20%) daria 15%
	assert.InDelta(t, 19.9, kpis.ConvScheduledOverLeads, 0.01)
}

func TestConsolidate_SemRegistros(t *testing.T) {
	kpis := Consolidate(nil)

	assert.Zero(t, kpis.TotalLeads)
	assert.Zero(t, kpis.TotalRevenue)
	assert.Zero(t, kpis.ConvScheduledOverLeads)
	assert.Zero(t, kpis.ROAS)
	assert.Zero(t, kpis.AverageTicket)
}

func TestConsolidate_InvestimentoZerado(t *testing.T) {
	metrics := []*domain.MonthlyMetrics{
		{Month: "Março", LeadsTotal: 50, Revenue: 10000},
	}

	kpis := Consolidate(metrics)

	assert.Zero(t, kpis.ROAS, "sem investimento o ROAS é zero, não infinito")
	assert.Zero(t, kpis.CostPerLead)
}
