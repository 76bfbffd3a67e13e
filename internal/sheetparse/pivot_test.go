package sheetparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leadsControlRows() [][]string {
	return [][]string{
		{"Controle de Leads 2025"},
		{"", "Janeiro", "Fevereiro", "Março", "Abril"},
		{"Leads Totais", "", "", "69", "267"},
		{"Leads Google Ads", "", "", "30", "120"},
		{"Leads Meta Ads", "", "", "25", "100"},
		{"Consultas Marcadas Totais", "", "", "20", "80"},
		{"Consultas Comparecidas", "", "", "15", "60"},
		{"Fechamentos Protocolos/Cirurgias", "", "", "5", "20"},
		{"Faturamento", "", "", "R$ 36.250,00", "R$ 360.050,00"},
		{"Valor Investido Total (Realizado)", "", "", "R$ 4.000,00", "R$ 12.500,00"},
		{"% de conversão Csm./leads", "", "", "28,99%", "29,96%"},
		{"Ticket Médio", "", "", "R$ 7.250,00", "R$ 18.002,50"},
		{"Anotações da equipe", "", "", "ver reunião", ""},
	}
}

func TestPivotWideTable(t *testing.T) {
	records := PivotWideTable(leadsControlRows(), "cl-001", 2025, false)

	require.Len(t, records, 2, "apenas os meses com atividade devem ser emitidos")

	marco := records[0]
	assert.Equal(t, "Março", marco.Month)
	assert.Equal(t, 2025, marco.Year)
	assert.Equal(t, "cl-001", marco.ClinicID)
	assert.Equal(t, 69, marco.LeadsTotal)
	assert.Equal(t, 30, marco.LeadsGoogleAds)
	assert.Equal(t, 25, marco.LeadsMetaAds)
	assert.Equal(t, 20, marco.ConsultationsScheduledTotal)
	assert.Equal(t, 15, marco.ConsultationsAttended)
	assert.Equal(t, 5, marco.ClosingsTotal)
	assert.InDelta(t, 36250.00, marco.Revenue, 0.001)
	assert.InDelta(t, 4000.00, marco.TotalSpend, 0.001)
	assert.InDelta(t, 28.99, marco.ConvScheduledOverLeads, 0.001)
	assert.InDelta(t, 7250.00, marco.AverageTicket, 0.001)

	abril := records[1]
	assert.Equal(t, "Abril", abril.Month)
	assert.Equal(t, 267, abril.LeadsTotal)
	assert.InDelta(t, 360050.00, abril.Revenue, 0.001)
}

func TestPivotWideTable_MesesSemAtividade(t *testing.T) {
	rows := [][]string{
		{"", "Janeiro", "Fevereiro"},
		{"Leads Totais", "0", ""},
		{"Consultas Marcadas Totais", "0", "0"},
	}

	records := PivotWideTable(rows, "cl-001", 2025, false)
	assert.Empty(t, records, "meses sem leads, faturamento ou investimento são filtrados")

	all := PivotWideTable(rows, "cl-001", 2025, true)
	require.Len(t, all, 2, "includeInactive emite todos os meses com células preenchidas")
	assert.Equal(t, "Janeiro", all[0].Month)
	assert.Equal(t, "Fevereiro", all[1].Month)
}

func TestPivotWideTable_SemCabecalhoDeMeses(t *testing.T) {
	rows := [][]string{
		{"Leads Totais", "10", "20"},
		{"Faturamento", "R$ 100,00", "R$ 200,00"},
	}

	assert.Nil(t, PivotWideTable(rows, "cl-001", 2025, false))
}

func TestPivotWideTable_CabecalhoComMesDuplicado(t *testing.T) {
	rows := [][]string{
		{"", "Janeiro", "Janeiro"},
		{"Leads Totais", "10", "99"},
	}

	records := PivotWideTable(rows, "cl-001", 2025, false)
	require.Len(t, records, 1)
	assert.Equal(t, 10, records[0].LeadsTotal, "vale a primeira ocorrência do mês no cabeçalho")
}

func TestPivotWideTable_Idempotente(t *testing.T) {
	first := PivotWideTable(leadsControlRows(), "cl-001", 2025, false)
	second := PivotWideTable(leadsControlRows(), "cl-001", 2025, false)

	assert.Equal(t, first, second)
}
