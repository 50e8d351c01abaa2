package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateIDWithLength gera um id alfanumérico com o tamanho informado
func GenerateIDWithLength(size int) (string, error) {
	return gonanoid.Generate(characters, size)
}
