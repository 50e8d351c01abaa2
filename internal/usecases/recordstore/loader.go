package recordstore

import (
	"strings"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/pkg/utils"
	"github.com/shopspring/decimal"
)

// Colunas obrigatórias da tabela de vendas
const (
	ColSaleDate        = "data_venda"
	ColQuantity        = "quantidade"
	ColUnitPrice       = "preco_unitario"
	ColCost            = "custo"
	ColSalesperson     = "vendedor"
	ColTeam            = "equipe"
	ColCustomerID      = "cliente"
	ColState           = "estado"
	ColService         = "servico"
	ColServiceCategory = "categoria_servico"
)

// RequiredColumns na ordem canônica da tabela
var RequiredColumns = []string{
	ColSaleDate, ColQuantity, ColUnitPrice, ColCost, ColSalesperson,
	ColTeam, ColCustomerID, ColState, ColService, ColServiceCategory,
}

// columnAliases aceita também os nomes em inglês
var columnAliases = map[string]string{
	"sale_date":        ColSaleDate,
	"quantity":         ColQuantity,
	"unit_price":       ColUnitPrice,
	"cost":             ColCost,
	"salesperson":      ColSalesperson,
	"team":             ColTeam,
	"customer_id":      ColCustomerID,
	"state":            ColState,
	"service":          ColService,
	"service_category": ColServiceCategory,
}

// Load valida e normaliza a tabela bruta. Qualquer falha aborta a carga inteira.
func Load(raw domain.RawTable, identity string) (*domain.RecordSet, error) {
	index, err := resolveColumns(raw.Header)
	if err != nil {
		return nil, err
	}

	records := make([]domain.SaleRecord, 0, len(raw.Rows))
	for i, row := range raw.Rows {
		if isBlankRow(row) {
			continue
		}

		record, err := parseRow(row, index, i+1)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	id, err := utils.GenerateIDWithLength(10)
	if err != nil {
		return nil, err
	}

	return domain.NewRecordSet(id, identity, "", records), nil
}

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.ToLower(strings.TrimSpace(h))
	if canonical, ok := columnAliases[h]; ok {
		return canonical
	}
	return h
}

func resolveColumns(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := normalizeHeader(h)
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}

	for _, col := range RequiredColumns {
		if _, ok := index[col]; !ok {
			return nil, &domain.DataFormatError{Column: col, Reason: "required column is missing"}
		}
	}
	return index, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func cell(row []string, index map[string]int, col string) string {
	i := index[col]
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseRow(row []string, index map[string]int, rowNum int) (domain.SaleRecord, error) {
	fail := func(col, value, reason string) error {
		return &domain.DataFormatError{Column: col, Row: rowNum, Value: value, Reason: reason}
	}

	rawDate := cell(row, index, ColSaleDate)
	saleDate, err := utils.ParseDate(rawDate)
	if err != nil {
		return domain.SaleRecord{}, fail(ColSaleDate, rawDate, err.Error())
	}

	rawQty := cell(row, index, ColQuantity)
	qty, err := utils.ParseDecimal(rawQty)
	if err != nil || !qty.IsInteger() {
		return domain.SaleRecord{}, fail(ColQuantity, rawQty, "not an integer")
	}
	if qty.IsNegative() {
		return domain.SaleRecord{}, fail(ColQuantity, rawQty, "negative value")
	}

	price, err := parseAmount(cell(row, index, ColUnitPrice))
	if err != nil {
		return domain.SaleRecord{}, fail(ColUnitPrice, cell(row, index, ColUnitPrice), err.Error())
	}

	cost, err := parseAmount(cell(row, index, ColCost))
	if err != nil {
		return domain.SaleRecord{}, fail(ColCost, cell(row, index, ColCost), err.Error())
	}

	categorical := make(map[string]string, 6)
	for _, col := range []string{ColSalesperson, ColTeam, ColCustomerID, ColState, ColService, ColServiceCategory} {
		v := cell(row, index, col)
		if v == "" {
			return domain.SaleRecord{}, fail(col, v, "empty value")
		}
		categorical[col] = v
	}

	return domain.NewSaleRecord(domain.SaleInput{
		SaleDate:        saleDate,
		Quantity:        qty.IntPart(),
		UnitPrice:       price,
		Cost:            cost,
		Salesperson:     categorical[ColSalesperson],
		Team:            categorical[ColTeam],
		CustomerID:      categorical[ColCustomerID],
		State:           categorical[ColState],
		Service:         categorical[ColService],
		ServiceCategory: categorical[ColServiceCategory],
	}), nil
}

func parseAmount(v string) (decimal.Decimal, error) {
	amount, err := utils.ParseDecimal(v)
	if err != nil {
		return decimal.Zero, errMalformedNumber
	}
	if amount.IsNegative() {
		return decimal.Zero, errNegativeNumber
	}
	return amount, nil
}
