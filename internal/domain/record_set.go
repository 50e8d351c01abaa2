package domain

import (
	"slices"
	"sort"
	"time"
)

// RawTable é a tabela bruta lida de uma fonte (arquivo, banco ou objeto)
type RawTable struct {
	Header []string
	Rows   [][]string
}

// RecordSet é um snapshot imutável das vendas carregadas.
// Nunca é alterado depois de construído; uma recarga gera um novo RecordSet.
type RecordSet struct {
	id          string
	source      string
	fingerprint string
	loadedAt    time.Time
	records     []SaleRecord
	months      []string
}

// NewRecordSet cria um snapshot a partir das vendas normalizadas
func NewRecordSet(id, source, fingerprint string, records []SaleRecord) *RecordSet {
	owned := slices.Clone(records)

	seen := make(map[string]bool)
	months := make([]string, 0)
	for _, r := range owned {
		if !seen[r.MonthKey] {
			seen[r.MonthKey] = true
			months = append(months, r.MonthKey)
		}
	}
	sort.Strings(months)

	return &RecordSet{
		id:          id,
		source:      source,
		fingerprint: fingerprint,
		loadedAt:    time.Now(),
		records:     owned,
		months:      months,
	}
}

// WithFingerprint retorna um novo snapshot com as mesmas vendas e outra impressão digital
func (rs *RecordSet) WithFingerprint(fingerprint string) *RecordSet {
	clone := *rs
	clone.fingerprint = fingerprint
	return &clone
}

func (rs *RecordSet) ID() string          { return rs.id }
func (rs *RecordSet) Source() string      { return rs.source }
func (rs *RecordSet) Fingerprint() string { return rs.fingerprint }
func (rs *RecordSet) LoadedAt() time.Time { return rs.loadedAt }
func (rs *RecordSet) Len() int            { return len(rs.records) }

// Records retorna uma cópia das vendas
func (rs *RecordSet) Records() []SaleRecord {
	return slices.Clone(rs.records)
}

// Months retorna os meses distintos em ordem crescente
func (rs *RecordSet) Months() []string {
	return slices.Clone(rs.months)
}

// Select retorna as vendas que satisfazem o predicado, sem expor o slice interno
func (rs *RecordSet) Select(match func(SaleRecord) bool) []SaleRecord {
	out := make([]SaleRecord, 0)
	for _, r := range rs.records {
		if match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Distinct retorna os valores distintos e ordenados de um campo categórico
func (rs *RecordSet) Distinct(field func(SaleRecord) string, match func(SaleRecord) bool) []string {
	seen := make(map[string]bool)
	values := make([]string, 0)
	for _, r := range rs.records {
		if match != nil && !match(r) {
			continue
		}
		v := field(r)
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Strings(values)
	return values
}

func sortStrings(values []string) { sort.Strings(values) }
