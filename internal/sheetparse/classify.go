package sheetparse

import "strings"

// TabShape é o formato estrutural reconhecido de uma aba
type TabShape int

const (
	// ShapeUnknown: aba vazia ou sem estrutura reconhecida; é pulada
	ShapeUnknown TabShape = iota
	// ShapeWideMetrics: uma linha por métrica, uma coluna por mês
	ShapeWideMetrics
	// ShapeLongProcedures: uma linha por venda de procedimento, com a linha 1
	// reservada para o mês de referência e a linha 2 para os cabeçalhos
	ShapeLongProcedures
)

func (s TabShape) String() string {
	switch s {
	case ShapeWideMetrics:
		return "wide_metrics"
	case ShapeLongProcedures:
		return "long_procedures"
	default:
		return "unknown"
	}
}

// Classify decide o formato de uma aba pelo conteúdo, não pelo nome. As
// clínicas renomeiam abas livremente, então a detecção precisa ser
// estrutural: o orquestrador usa o nome da aba apenas como atalho.
func Classify(rows [][]string) TabShape {
	if len(rows) == 0 {
		return ShapeUnknown
	}

	if isLongProcedures(rows) {
		return ShapeLongProcedures
	}

	if isWideMetrics(rows) {
		return ShapeWideMetrics
	}

	return ShapeUnknown
}

// isWideMetrics exige pelo menos uma linha cujo rótulo da primeira célula é
// uma métrica conhecida E pelo menos um cabeçalho de coluna que é um token de
// mês. Os dois sinais juntos evitam falsos positivos em abas de anotações.
func isWideMetrics(rows [][]string) bool {
	hasMetricRow := false
	hasMonthColumn := false

	for _, row := range rows {
		if len(row) == 0 {
			continue
		}

		if IsKnownMetric(strings.TrimSpace(row[0])) {
			hasMetricRow = true
		}

		for _, cell := range row {
			if _, ok := MonthNumber(strings.TrimSpace(cell)); ok {
				hasMonthColumn = true
				break
			}
		}

		if hasMetricRow && hasMonthColumn {
			return true
		}
	}

	return false
}

// isLongProcedures reconhece o formato da aba "Procedimentos": linha 1 traz
// apenas o mês de referência, linha 2 os cabeçalhos reais (pelo menos dois
// do vocabulário de procedimentos), linhas 3+ os dados.
func isLongProcedures(rows [][]string) bool {
	if len(rows) < 2 {
		return false
	}

	if !isMonthReferenceRow(rows[0]) {
		return false
	}

	known := 0
	for _, cell := range rows[1] {
		if _, _, ok := LookupProcedureColumn(strings.TrimSpace(cell)); ok {
			known++
		}
	}

	return known >= 2
}

// isMonthReferenceRow aceita uma linha cujo único conteúdo não vazio é a
// primeira célula (o mês de referência)
func isMonthReferenceRow(row []string) bool {
	if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
		return false
	}

	for _, cell := range row[1:] {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
