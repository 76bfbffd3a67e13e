package sheetparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
	}{
		{"Número simples", "69", 69},
		{"Com espaços ao redor", "  267 ", 267},
		{"Célula vazia", "", 0},
		{"Traço como vazio", "-", 0},
		{"Texto não numérico", "n/a", 0},
		{"Número com ruído de digitação", "12 leads", 12},
		{"Valor negativo colapsa para zero", "-5", 0},
		{"Zero explícito", "0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseCount(tt.raw))
		})
	}
}

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
	}{
		{"Formato brasileiro completo", "R$ 1.234,56", 1234.56},
		{"Milhares sem centavos", "R$ 36.250,00", 36250.00},
		{"Centenas de milhar", "R$ 360.050,00", 360050.00},
		{"Apenas vírgula decimal", "1234,56", 1234.56},
		{"Vírgula de agrupamento", "1,234", 1234},
		{"Número puro", "1500", 1500},
		{"Número com ponto decimal", "1500.75", 1500.75},
		{"Célula vazia", "", 0},
		{"Traço como vazio", "-", 0},
		{"Texto livre", "a combinar", 0},
		{"Valor negativo colapsa para zero", "-R$ 100,00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ParseCurrency(tt.raw), 0.001)
		})
	}
}

func TestParsePercentage(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
	}{
		{"Percentual com vírgula", "12,5%", 12.5},
		{"Percentual com ponto", "12.5%", 12.5},
		{"Sem símbolo", "33", 33},
		{"Com espaço antes do símbolo", "8 %", 8},
		{"Célula vazia", "", 0},
		{"Texto inválido", "muito bom", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ParsePercentage(tt.raw), 0.001)
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected *time.Time
	}{
		{"Formato brasileiro completo", "15/03/2025", timePtr(2025, time.March, 15)},
		{"Ano com dois dígitos", "15/03/25", timePtr(2025, time.March, 15)},
		{"Formato ISO", "2025-03-15", timePtr(2025, time.March, 15)},
		{"Dia e mês sem zero à esquerda", "5/3/2025", timePtr(2025, time.March, 5)},
		{"Célula vazia", "", nil},
		{"Traço como vazio", "-", nil},
		{"Texto inválido", "março", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDate(tt.raw)
			if tt.expected == nil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.True(t, tt.expected.Equal(*got), "esperado %s, obtido %s", tt.expected, got)
		})
	}
}

func timePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
