package tabular

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Formatos de tabela suportados
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// FormatFromName deduz o formato pela extensão do arquivo
func FormatFromName(name string) (string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("unsupported table format: %s", name)
}

// ReadTable lê a tabela no formato indicado
func ReadTable(r io.Reader, format, sheet string) (domain.RawTable, error) {
	switch format {
	case FormatCSV:
		return ReadCSV(r)
	case FormatXLSX:
		return ReadXLSX(r, sheet)
	}
	return domain.RawTable{}, fmt.Errorf("unsupported table format: %s", format)
}

// ReadCSV lê um CSV separado por vírgula ou ponto e vírgula
func ReadCSV(r io.Reader) (domain.RawTable, error) {
	br := bufio.NewReader(r)

	firstLine, err := br.Peek(1024)
	if err != nil && err != io.EOF {
		return domain.RawTable{}, err
	}

	reader := csv.NewReader(br)
	reader.Comma = detectDelimiter(firstLine)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return domain.RawTable{}, &domain.DataFormatError{Column: "*", Reason: err.Error()}
	}

	return toRawTable(rows), nil
}

// ReadXLSX lê a planilha indicada, ou a primeira quando sheet é vazio
func ReadXLSX(r io.Reader, sheet string) (domain.RawTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return domain.RawTable{}, &domain.DataFormatError{Column: "*", Reason: err.Error()}
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return domain.RawTable{}, &domain.DataFormatError{Column: "*", Reason: "workbook has no sheets"}
		}
		sheet = sheets[0]
	}

	// Valores brutos: datas chegam como serial do Excel e números sem o formato de exibição
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return domain.RawTable{}, &domain.DataFormatError{Column: "*", Reason: err.Error()}
	}

	return toRawTable(rows), nil
}

func toRawTable(rows [][]string) domain.RawTable {
	if len(rows) == 0 {
		return domain.RawTable{}
	}
	return domain.RawTable{Header: rows[0], Rows: rows[1:]}
}

// detectDelimiter escolhe ';' quando a primeira linha tem mais ponto e vírgula do que vírgula
func detectDelimiter(sample []byte) rune {
	if i := bytes.IndexByte(sample, '\n'); i >= 0 {
		sample = sample[:i]
	}
	if bytes.Count(sample, []byte{';'}) > bytes.Count(sample, []byte{','}) {
		return ';'
	}
	return ','
}
