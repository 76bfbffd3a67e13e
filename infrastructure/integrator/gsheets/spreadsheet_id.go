package gsheets

import (
	"regexp"
	"strings"
)

var (
	// URL canônica: .../spreadsheets/d/<id>/edit
	pathIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)
	// Formato antigo de exportação: ...?id=<id>
	queryIDPattern = regexp.MustCompile(`id=([a-zA-Z0-9-_]+)`)
	// Token colado sem URL; IDs de planilha têm 44 caracteres
	bareIDPattern = regexp.MustCompile(`^[a-zA-Z0-9-_]{44}$`)
)

// ExtractSpreadsheetID extrai o ID da planilha do link cadastrado para a
// clínica. Aceita a URL canônica, o formato antigo com query string e o ID
// colado diretamente no campo. Retorna vazio quando nada é reconhecido.
func ExtractSpreadsheetID(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}

	if m := pathIDPattern.FindStringSubmatch(link); m != nil {
		return m[1]
	}

	if m := queryIDPattern.FindStringSubmatch(link); m != nil {
		return m[1]
	}

	if bareIDPattern.MatchString(link) {
		return link
	}

	return ""
}
