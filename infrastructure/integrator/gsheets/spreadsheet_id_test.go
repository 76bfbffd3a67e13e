package gsheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSpreadsheetID(t *testing.T) {
	const id = "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"

	tests := []struct {
		name     string
		link     string
		expected string
	}{
		{
			name:     "URL canônica de edição",
			link:     "https://docs.google.com/spreadsheets/d/" + id + "/edit#gid=0",
			expected: id,
		},
		{
			name:     "URL canônica sem sufixo",
			link:     "https://docs.google.com/spreadsheets/d/" + id,
			expected: id,
		},
		{
			name:     "URL antiga com parâmetro id",
			link:     "https://docs.google.com/spreadsheet/ccc?id=" + id + "&usp=sharing",
			expected: id,
		},
		{
			name:     "ID colado diretamente no cadastro",
			link:     id,
			expected: id,
		},
		{
			name:     "Com espaços ao redor",
			link:     "  https://docs.google.com/spreadsheets/d/" + id + "/edit  ",
			expected: id,
		},
		{
			name:     "Link de outro produto Google",
			link:     "https://docs.google.com/document/d/abc123/edit",
			expected: "",
		},
		{
			name:     "Texto livre",
			link:     "planilha está com a Maria",
			expected: "",
		},
		{
			name:     "Vazio",
			link:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractSpreadsheetID(tt.link))
		})
	}
}
