package tabular

import (
	"context"
	"fmt"
	"os"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
)

// FileSource lê a tabela de vendas de um arquivo local
type FileSource struct {
	path   string
	format string
	sheet  string
}

func NewFileSource(path, sheet string) (*FileSource, error) {
	format, err := FormatFromName(path)
	if err != nil {
		return nil, err
	}
	return &FileSource{path: path, format: format, sheet: sheet}, nil
}

func (s *FileSource) Identity() string {
	return "file://" + s.path
}

// Fingerprint usa tamanho e data de modificação do arquivo
func (s *FileSource) Fingerprint(_ context.Context) (string, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d-%d", info.Size(), info.ModTime().UnixNano()), nil
}

func (s *FileSource) Read(_ context.Context) (domain.RawTable, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return domain.RawTable{}, err
	}
	defer f.Close()

	return ReadTable(f, s.format, s.sheet)
}
