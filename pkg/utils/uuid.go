package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto (6 caracteres), usado para ids de
// clínica e para o run_id das execuções de sincronização.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
