package sheetparse

import (
	"strings"

	"github.com/vfg2006/clinic-dashboard-api/internal/domain"
	"github.com/vfg2006/clinic-dashboard-api/pkg/log"
)

// PivotWideTable transforma uma aba no formato largo (uma linha por métrica,
// uma coluna por mês) em um registro MonthlyMetrics por mês.
//
// Por padrão só meses com atividade (leads, faturamento ou investimento) são
// emitidos; includeInactive força a emissão de todos os meses presentes no
// cabeçalho, usado para repovoar meses que só têm faturamento.
//
// Rótulos de linha fora do catálogo e colunas fora do vocabulário de meses
// são ignorados em silêncio; o rótulo não reconhecido é logado em debug para
// diagnóstico do operador (deriva de acento/espaço derruba a métrica).
func PivotWideTable(rows [][]string, clinicID string, year int, includeInactive bool) []*domain.MonthlyMetrics {
	headerIdx, monthCols := findMonthHeader(rows)
	if monthCols == nil {
		return nil
	}

	byMonth := make(map[string]*domain.MonthlyMetrics)

	for i, row := range rows {
		if i == headerIdx || len(row) == 0 {
			continue
		}

		label := strings.TrimSpace(row[0])
		if label == "" {
			continue
		}

		field, kind, ok := LookupMetric(label)
		if !ok {
			log.L.WithFields(log.Fields{
				"clinic_id": clinicID,
				"label":     label,
			}).Debug("pivô: rótulo de linha não reconhecido, ignorando")
			continue
		}

		for col, month := range monthCols {
			if col >= len(row) {
				continue
			}

			raw := strings.TrimSpace(row[col])
			if raw == "" {
				continue
			}

			record, exists := byMonth[month]
			if !exists {
				record = &domain.MonthlyMetrics{
					ClinicID: clinicID,
					Month:    month,
					Year:     year,
				}
				byMonth[month] = record
			}

			assignMetric(record, field, kind, raw)
		}
	}

	// Emite na ordem do calendário para manter o resultado determinístico
	records := make([]*domain.MonthlyMetrics, 0, len(byMonth))
	for _, month := range domain.Months {
		record, ok := byMonth[month]
		if !ok {
			continue
		}
		if includeInactive || record.HasActivity() {
			records = append(records, record)
		}
	}

	return records
}

// findMonthHeader localiza a primeira linha com pelo menos um token de mês e
// devolve o mapa coluna → mês. Cabeçalhos duplicados ou vazios são
// descartados (vale a primeira ocorrência de cada mês).
func findMonthHeader(rows [][]string) (int, map[int]string) {
	for i, row := range rows {
		var cols map[int]string
		seen := make(map[string]bool)

		for col, cell := range row {
			name := strings.TrimSpace(cell)
			if _, ok := MonthNumber(name); !ok || seen[name] {
				continue
			}
			if cols == nil {
				cols = make(map[int]string)
			}
			cols[col] = name
			seen[name] = true
		}

		if cols != nil {
			return i, cols
		}
	}

	return -1, nil
}

func assignMetric(record *domain.MonthlyMetrics, field FieldID, kind Kind, raw string) {
	switch kind {
	case KindCount:
		assignCount(record, field, ParseCount(raw))
	case KindCurrency:
		assignCurrency(record, field, ParseCurrency(raw))
	case KindPercentage:
		assignPercentage(record, field, ParsePercentage(raw))
	}
}

func assignCount(record *domain.MonthlyMetrics, field FieldID, value int) {
	switch field {
	case FieldLeadsTotal:
		record.LeadsTotal = value
	case FieldLeadsGoogleAds:
		record.LeadsGoogleAds = value
	case FieldLeadsMetaAds:
		record.LeadsMetaAds = value
	case FieldLeadsInstagramOrganic:
		record.LeadsInstagramOrganic = value
	case FieldLeadsReferral:
		record.LeadsReferral = value
	case FieldLeadsUnknownOrigin:
		record.LeadsUnknownOrigin = value
	case FieldScheduledTotal:
		record.ConsultationsScheduledTotal = value
	case FieldScheduledGoogleAds:
		record.ConsultationsScheduledGoogleAds = value
	case FieldScheduledMetaAds:
		record.ConsultationsScheduledMetaAds = value
	case FieldScheduledIGOrganic:
		record.ConsultationsScheduledIGOrganic = value
	case FieldScheduledReferral:
		record.ConsultationsScheduledReferral = value
	case FieldScheduledOther:
		record.ConsultationsScheduledOther = value
	case FieldAttended:
		record.ConsultationsAttended = value
	case FieldClosingsTotal:
		record.ClosingsTotal = value
	case FieldClosingsGoogleAds:
		record.ClosingsGoogleAds = value
	case FieldClosingsMetaAds:
		record.ClosingsMetaAds = value
	case FieldClosingsIGOrganic:
		record.ClosingsIGOrganic = value
	case FieldClosingsReferral:
		record.ClosingsReferral = value
	case FieldClosingsOther:
		record.ClosingsOther = value
	}
}

func assignCurrency(record *domain.MonthlyMetrics, field FieldID, value float64) {
	switch field {
	case FieldRevenue:
		record.Revenue = value
	case FieldTotalSpend:
		record.TotalSpend = value
	case FieldPlannedBudgetTotal:
		record.PlannedBudgetTotal = value
	case FieldRealizedSpendFacebook:
		record.RealizedSpendFacebook = value
	case FieldPlannedSpendFacebook:
		record.PlannedSpendFacebook = value
	case FieldRealizedSpendGoogle:
		record.RealizedSpendGoogle = value
	case FieldPlannedSpendGoogle:
		record.PlannedSpendGoogle = value
	case FieldCostPerClosing:
		record.CostPerClosing = value
	case FieldCostPerLead:
		record.CostPerLead = value
	case FieldCostPerScheduled:
		record.CostPerScheduled = value
	case FieldCostPerAttended:
		record.CostPerAttended = value
	case FieldAverageTicket:
		record.AverageTicket = value
	}
}

func assignPercentage(record *domain.MonthlyMetrics, field FieldID, value float64) {
	switch field {
	case FieldConvScheduledOverLeads:
		record.ConvScheduledOverLeads = value
	case FieldConvAttendedOverScheduled:
		record.ConvAttendedOverScheduled = value
	case FieldConvClosingsOverAttended:
		record.ConvClosingsOverAttended = value
	case FieldConvClosingsOverLeads:
		record.ConvClosingsOverLeads = value
	case FieldROAS:
		record.ROAS = value
	}
}
