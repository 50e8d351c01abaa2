package recordstore

import (
	"errors"
	"testing"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var header = []string{"data_venda", "quantidade", "preco_unitario", "custo", "vendedor", "equipe", "cliente", "estado", "servico", "categoria_servico"}

func TestLoad(t *testing.T) {
	t.Run("Exemplo ponta a ponta", func(t *testing.T) {
		raw := domain.RawTable{
			Header: header,
			Rows: [][]string{
				{"2024-01-15", "2", "100", "50", "A", "Norte", "C1", "SP", "Backup em Nuvem", "Backup"},
				{"10/02/2024", "1", "200,00", "80", "B", "Sul", "C2", "RJ", "Firewall", "Redes"},
				{"", "", "", "", "", "", "", "", "", ""},
			},
		}

		rs, err := Load(raw, "vendas.csv")
		require.NoError(t, err)

		records := rs.Records()
		require.Len(t, records, 2)
		assert.Equal(t, "2024-01", records[0].MonthKey)
		assert.Equal(t, "200", records[0].Revenue.String())
		assert.Equal(t, "100", records[0].Profit.String())
		assert.Equal(t, "2024-02", records[1].MonthKey)
		assert.Equal(t, "200", records[1].Revenue.String())
		assert.Equal(t, "120", records[1].Profit.String())
		assert.Equal(t, []string{"2024-01", "2024-02"}, rs.Months())
		assert.Equal(t, "vendas.csv", rs.Source())
		assert.NotEmpty(t, rs.ID())
	})

	t.Run("Cabeçalhos em inglês com BOM e caixa alta", func(t *testing.T) {
		raw := domain.RawTable{
			Header: []string{"\ufeffSale_Date", "QUANTITY", " unit_price ", "cost", "salesperson", "team", "customer_id", "state", "service", "service_category"},
			Rows:   [][]string{{"2024-03-01 10:30:00", "3", "10.5", "1", "A", "T", "C", "MG", "S", "K"}},
		}

		rs, err := Load(raw, "en.csv")
		require.NoError(t, err)
		assert.Equal(t, 1, rs.Len())
		assert.Equal(t, "31.5", rs.Records()[0].Revenue.String())
	})
}

func TestLoad_DataFormatError(t *testing.T) {
	validRow := []string{"2024-01-15", "2", "100", "50", "A", "Norte", "C1", "SP", "Backup em Nuvem", "Backup"}

	withCell := func(col int, value string) []string {
		row := append([]string(nil), validRow...)
		row[col] = value
		return row
	}

	tests := []struct {
		name   string
		raw    domain.RawTable
		column string
		row    int
	}{
		{
			name:   "Coluna obrigatória ausente",
			raw:    domain.RawTable{Header: header[:9], Rows: [][]string{validRow[:9]}},
			column: ColServiceCategory,
		},
		{
			name:   "Data inválida",
			raw:    domain.RawTable{Header: header, Rows: [][]string{validRow, withCell(0, "ontem")}},
			column: ColSaleDate,
			row:    2,
		},
		{
			name:   "Quantidade fracionada",
			raw:    domain.RawTable{Header: header, Rows: [][]string{withCell(1, "1.5")}},
			column: ColQuantity,
			row:    1,
		},
		{
			name:   "Quantidade negativa",
			raw:    domain.RawTable{Header: header, Rows: [][]string{withCell(1, "-1")}},
			column: ColQuantity,
			row:    1,
		},
		{
			name:   "Preço malformado",
			raw:    domain.RawTable{Header: header, Rows: [][]string{withCell(2, "R$ dez")}},
			column: ColUnitPrice,
			row:    1,
		},
		{
			name:   "Custo negativo",
			raw:    domain.RawTable{Header: header, Rows: [][]string{withCell(3, "-5")}},
			column: ColCost,
			row:    1,
		},
		{
			name:   "Vendedor vazio",
			raw:    domain.RawTable{Header: header, Rows: [][]string{withCell(4, " ")}},
			column: ColSalesperson,
			row:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, err := Load(tt.raw, "x.csv")

			assert.Nil(t, rs)
			assert.True(t, errors.Is(err, domain.ErrDataFormat))

			var formatErr *domain.DataFormatError
			require.True(t, errors.As(err, &formatErr))
			assert.Equal(t, tt.column, formatErr.Column)
			assert.Equal(t, tt.row, formatErr.Row)
		})
	}
}
