package sheetparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		expected TabShape
	}{
		{
			name:     "Aba vazia",
			rows:     [][]string{},
			expected: ShapeUnknown,
		},
		{
			name: "Tabela larga de métricas",
			rows: [][]string{
				{"", "Janeiro", "Fevereiro", "Março"},
				{"Leads Totais", "10", "20", "69"},
				{"Faturamento", "R$ 1.000,00", "R$ 2.000,00", "R$ 36.250,00"},
			},
			expected: ShapeWideMetrics,
		},
		{
			name: "Aba de procedimentos",
			rows: [][]string{
				{"Outubro"},
				{"Procedimento", "Tipo", "Valor da Venda"},
				{"Rinoplastia", "Cirurgia", "R$ 15.000,00"},
			},
			expected: ShapeLongProcedures,
		},
		{
			name: "Anotações livres sem estrutura",
			rows: [][]string{
				{"Reunião de alinhamento"},
				{"Pauta", "Responsável"},
			},
			expected: ShapeUnknown,
		},
		{
			name: "Meses sem métricas conhecidas",
			rows: [][]string{
				{"", "Janeiro", "Fevereiro"},
				{"Observações", "ok", "ok"},
			},
			expected: ShapeUnknown,
		},
		{
			name: "Métricas sem colunas de mês",
			rows: [][]string{
				{"Leads Totais", "10", "20"},
			},
			expected: ShapeUnknown,
		},
		{
			name: "Procedimentos sem linha de mês de referência",
			rows: [][]string{
				{"Procedimento", "Tipo", "Valor da Venda"},
				{"Rinoplastia", "Cirurgia", "R$ 15.000,00"},
			},
			expected: ShapeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.rows))
		})
	}
}
