// Package reporting consolida os registros mensais sincronizados em
// indicadores para o painel.
package reporting

import (
	"github.com/vfg2006/clinic-dashboard-api/internal/domain"
	"github.com/vfg2006/clinic-dashboard-api/pkg/utils"
)

// SafeRatio divide a por b retornando 0 quando b é zero. Clínicas recém
// cadastradas têm meses sem leads ou sem investimento e o painel precisa
// exibir zero, não NaN.
func SafeRatio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}

// Consolidate deriva os KPIs do período a partir dos totais somados dos
// meses. As razões saem dos totais agregados: a média dos percentuais
// mensais daria peso igual a meses com volumes muito diferentes.
func Consolidate(metrics []*domain.MonthlyMetrics) *domain.DashboardKPIs {
	kpis := &domain.DashboardKPIs{}

	for _, m := range metrics {
		kpis.TotalLeads += m.LeadsTotal
		kpis.TotalConsultationsSchedule += m.ConsultationsScheduledTotal
		kpis.TotalConsultationsAttended += m.ConsultationsAttended
		kpis.TotalClosings += m.ClosingsTotal
		kpis.TotalRevenue += m.Revenue
		kpis.TotalSpend += m.TotalSpend
	}

	leads := float64(kpis.TotalLeads)
	scheduled := float64(kpis.TotalConsultationsSchedule)
	attended := float64(kpis.TotalConsultationsAttended)
	closings := float64(kpis.TotalClosings)

	kpis.ConvScheduledOverLeads = utils.RoundWithTwoDecimalPlace(SafeRatio(scheduled, leads) * 100)
	kpis.ConvAttendedOverScheduled = utils.RoundWithTwoDecimalPlace(SafeRatio(attended, scheduled) * 100)
	kpis.ConvClosingsOverAttended = utils.RoundWithTwoDecimalPlace(SafeRatio(closings, attended) * 100)
	kpis.ConvClosingsOverLeads = utils.RoundWithTwoDecimalPlace(SafeRatio(closings, leads) * 100)

	kpis.ROAS = utils.RoundWithTwoDecimalPlace(SafeRatio(kpis.TotalRevenue, kpis.TotalSpend))
	kpis.CostPerLead = utils.RoundWithTwoDecimalPlace(SafeRatio(kpis.TotalSpend, leads))
	kpis.CostPerScheduled = utils.RoundWithTwoDecimalPlace(SafeRatio(kpis.TotalSpend, scheduled))
	kpis.CostPerAttended = utils.RoundWithTwoDecimalPlace(SafeRatio(kpis.TotalSpend, attended))
	kpis.CostPerClosing = utils.RoundWithTwoDecimalPlace(SafeRatio(kpis.TotalSpend, closings))
	kpis.AverageTicket = utils.RoundWithTwoDecimalPlace(SafeRatio(kpis.TotalRevenue, closings))

	return kpis
}
