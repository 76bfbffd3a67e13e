// Package sheetparse transforma o conteúdo bruto das planilhas das clínicas
// (abas "Controle de Leads" e "Procedimentos") em registros normalizados.
//
// As planilhas são editadas por terceiros e não há como garantir células bem
// formadas; por isso todas as funções de normalização são totais: entrada
// inválida degrada para um valor neutro (0 / nil) em vez de abortar a
// sincronização da clínica inteira.
package sheetparse

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts são os formatos aceitos, em ordem de tentativa. Dia primeiro,
// como preenchido nas planilhas brasileiras.
var dateLayouts = []string{
	"02/01/2006",
	"02/01/06",
	"2006-01-02",
	"02-01-2006",
	"2/1/2006",
	"2/1/06",
}

// ParseCount converte o texto de uma célula em um contador não-negativo.
// Vazio, "-" ou qualquer coisa não numérica vira 0; valores com sinal
// negativo são tratados como ruído de digitação e colapsam para 0.
func ParseCount(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-" {
		return 0
	}

	if strings.HasPrefix(s, "-") {
		return 0
	}

	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	if digits.Len() == 0 {
		return 0
	}

	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}

	return n
}

// ParseCurrency converte texto monetário no padrão brasileiro para float64.
//
// Regras de separador: se "." e "," aparecem juntos, "." é separador de
// milhar e "," é decimal ("R$ 1.234,56"); se só "," aparece e exatamente
// dois dígitos a seguem, "," é decimal ("1234,56"), senão é agrupamento de
// milhar. Valores que resultam negativos colapsam para 0.0: planilhas de
// clínicas registram estornos como texto livre e o sinal costuma ser ruído.
func ParseCurrency(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-" {
		return 0.0
	}

	// Mantém apenas dígitos, separadores e sinal
	var cleaned strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' || r == '-' {
			cleaned.WriteRune(r)
		}
	}
	s = cleaned.String()
	if s == "" || s == "-" {
		return 0.0
	}

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")

	switch {
	case hasComma && hasDot:
		// Formato brasileiro completo: 1.234,56
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case hasComma:
		idx := strings.LastIndex(s, ",")
		frac := s[idx+1:]
		if strings.Count(s, ",") == 1 && len(frac) == 2 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0.0
	}

	if value < 0 {
		return 0.0
	}

	return value
}

// ParsePercentage converte texto percentual ("12,5%") para float64.
// Entrada inválida vira 0.0.
func ParsePercentage(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-" {
		return 0.0
	}

	s = strings.ReplaceAll(s, "%", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.Replace(s, ",", ".", 1)

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0.0
	}

	return value
}

// ParseDate tenta os formatos de data aceitos em ordem; retorna nil quando
// nenhum serve. Nunca retorna erro.
func ParseDate(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" || s == "-" {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &t
		}
	}

	return nil
}
