package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type saleFixture struct {
	date     string
	qty      int64
	price    float64
	cost     float64
	seller   string
	team     string
	customer string
	state    string
	service  string
	category string
}

func newSale(f saleFixture) SaleRecord {
	d, err := time.Parse("2006-01-02", f.date)
	if err != nil {
		panic(err)
	}
	if f.customer == "" {
		f.customer = "C1"
	}
	return NewSaleRecord(SaleInput{
		SaleDate:        d,
		Quantity:        f.qty,
		UnitPrice:       decimal.NewFromFloat(f.price),
		Cost:            decimal.NewFromFloat(f.cost),
		Salesperson:     f.seller,
		Team:            f.team,
		CustomerID:      f.customer,
		State:           f.state,
		Service:         f.service,
		ServiceCategory: f.category,
	})
}

func newRecordSet(fixtures ...saleFixture) *RecordSet {
	records := make([]SaleRecord, 0, len(fixtures))
	for _, f := range fixtures {
		records = append(records, newSale(f))
	}
	return NewRecordSet("rs-test", "memoria", "fp", records)
}
