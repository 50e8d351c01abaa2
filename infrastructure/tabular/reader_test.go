package tabular

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/usecases/recordstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "Separado por vírgula", input: "data_venda,quantidade\n2024-01-15,2\n2024-02-10,1\n"},
		{name: "Separado por ponto e vírgula", input: "data_venda;quantidade\n2024-01-15;2\n2024-02-10;1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ReadCSV(strings.NewReader(tt.input))
			require.NoError(t, err)

			assert.Equal(t, []string{"data_venda", "quantidade"}, table.Header)
			assert.Equal(t, [][]string{{"2024-01-15", "2"}, {"2024-02-10", "1"}}, table.Rows)
		})
	}
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"data_venda", "quantidade"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"2024-01-15", "2"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	table, err := ReadXLSX(&buf, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"data_venda", "quantidade"}, table.Header)
	assert.Equal(t, [][]string{{"2024-01-15", "2"}}, table.Rows)
}

func TestReadXLSX_DateCells(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{
		"data_venda", "quantidade", "preco_unitario", "custo", "vendedor",
		"equipe", "cliente", "estado", "servico", "categoria_servico",
	}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{
		time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), 2, 1234.5, 50, "Sarah",
		"Sul", "C1", "SP", "Firewall", "Segurança",
	}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	table, err := ReadXLSX(&buf, "")
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "1234.5", table.Rows[0][2])

	rs, err := recordstore.Load(table, "vendas.xlsx")
	require.NoError(t, err)
	require.Equal(t, 1, rs.Len())

	sale := rs.Records()[0]
	assert.True(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC).Equal(sale.SaleDate))
	assert.Equal(t, "2024-01", sale.MonthKey)
	assert.Equal(t, 2469.0, domain.Aggregate(rs.Records()).TotalRevenue)
}

func TestFormatFromName(t *testing.T) {
	format, err := FormatFromName("dados/VENDAS.XLSX")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, format)

	_, err = FormatFromName("vendas.parquet")
	assert.Error(t, err)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vendas.csv")
	require.NoError(t, os.WriteFile(path, []byte("data_venda,quantidade\n2024-01-15,2\n"), 0o644))

	source, err := NewFileSource(path, "")
	require.NoError(t, err)

	fp1, err := source.Fingerprint(context.Background())
	require.NoError(t, err)

	table, err := source.Read(context.Background())
	require.NoError(t, err)
	assert.Len(t, table.Rows, 1)

	require.NoError(t, os.WriteFile(path, []byte("data_venda,quantidade\n2024-01-15,2\n2024-01-16,3\n"), 0o644))
	fp2, err := source.Fingerprint(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, fp1, fp2)
}
