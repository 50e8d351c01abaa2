package recordstore

import "errors"

var (
	errMalformedNumber = errors.New("malformed number")
	errNegativeNumber  = errors.New("negative value")

	// ErrSourceRead indica falha de leitura da fonte, antes da validação da tabela
	ErrSourceRead = errors.New("error reading sales source")
)
