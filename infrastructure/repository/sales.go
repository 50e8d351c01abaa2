// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/infrastructure/database/postgres"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	"github.com/lib/pq"
)

// SalesColumns são as colunas da tabela de vendas, com os nomes da planilha
var SalesColumns = []string{
	"data_venda",
	"quantidade",
	"preco_unitario",
	"custo",
	"vendedor",
	"equipe",
	"cliente",
	"estado",
	"servico",
	"categoria_servico",
}

type SalesRepository interface {
	Identity() string
	Fingerprint(ctx context.Context) (string, error)
	Read(ctx context.Context) (domain.RawTable, error)
	EnsureTable(ctx context.Context) error
	InsertBatch(ctx context.Context, ids []string, rows [][]string) (int, error)
}

type salesRepository struct {
	conn  *postgres.Connection
	table string
}

func NewSalesRepository(conn *postgres.Connection, table string) SalesRepository {
	return &salesRepository{
		conn:  conn,
		table: table,
	}
}

func (r *salesRepository) Identity() string {
	return "postgres://" + r.table
}

// Fingerprint combina contagem, última data e soma de faturamento da tabela
func (r *salesRepository) Fingerprint(ctx context.Context) (string, error) {
	query, args, err := squirrel.
		Select(
			"COUNT(*)",
			"COALESCE(MAX(data_venda)::text, '')",
			"COALESCE(SUM(quantidade * preco_unitario)::text, '0')",
		).
		From(r.table).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		count   int64
		lastDay string
		total   string
	)
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&count, &lastDay, &total); err != nil {
		return "", fmt.Errorf("erro ao calcular impressão digital: %w", err)
	}

	return fmt.Sprintf("%d|%s|%s", count, lastDay, total), nil
}

func (r *salesRepository) Read(ctx context.Context) (domain.RawTable, error) {
	query, args, err := squirrel.
		Select(
			"to_char(data_venda, 'YYYY-MM-DD')",
			"quantidade",
			"preco_unitario::text",
			"custo::text",
			"vendedor",
			"equipe",
			"cliente",
			"estado",
			"servico",
			"categoria_servico",
		).
		From(r.table).
		OrderBy("data_venda ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.RawTable{Header: SalesColumns}, nil
		}
		return domain.RawTable{}, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	table := domain.RawTable{Header: SalesColumns, Rows: make([][]string, 0)}
	for rows.Next() {
		var date, price, cost, seller, team, customer, state, service, category string
		var qty int64
		if err := rows.Scan(&date, &qty, &price, &cost, &seller, &team, &customer, &state, &service, &category); err != nil {
			return domain.RawTable{}, fmt.Errorf("erro ao escanear venda: %w", err)
		}

		table.Rows = append(table.Rows, []string{
			date, strconv.FormatInt(qty, 10), price, cost, seller, team, customer, state, service, category,
		})
	}

	if err = rows.Err(); err != nil {
		return domain.RawTable{}, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return table, nil
}

// EnsureTable cria a tabela de vendas quando ela ainda não existe
func (r *salesRepository) EnsureTable(ctx context.Context) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id                VARCHAR(16) PRIMARY KEY,
		data_venda        DATE           NOT NULL,
		quantidade        INTEGER        NOT NULL CHECK (quantidade >= 0),
		preco_unitario    NUMERIC(14, 2) NOT NULL CHECK (preco_unitario >= 0),
		custo             NUMERIC(14, 2) NOT NULL CHECK (custo >= 0),
		vendedor          TEXT           NOT NULL,
		equipe            TEXT           NOT NULL,
		cliente           TEXT           NOT NULL,
		estado            VARCHAR(2)     NOT NULL,
		servico           TEXT           NOT NULL,
		categoria_servico TEXT           NOT NULL
	)`, pq.QuoteIdentifier(r.table))

	if _, err := r.conn.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("erro ao criar tabela %s: %w", r.table, err)
	}
	return nil
}

// InsertBatch insere as linhas (na ordem de SalesColumns) em uma única transação
func (r *salesRepository) InsertBatch(ctx context.Context, ids []string, rows [][]string) (int, error) {
	if len(ids) != len(rows) {
		return 0, fmt.Errorf("quantidade de ids (%d) difere da de linhas (%d)", len(ids), len(rows))
	}
	if len(rows) == 0 {
		return 0, nil
	}

	builder := squirrel.
		Insert(r.table).
		Columns(append([]string{"id"}, SalesColumns...)...).
		PlaceholderFormat(squirrel.Dollar)

	for i, row := range rows {
		if len(row) != len(SalesColumns) {
			return 0, fmt.Errorf("linha %d com %d colunas, esperado %d", i+1, len(row), len(SalesColumns))
		}
		values := make([]interface{}, 0, len(row)+1)
		values = append(values, ids[i])
		for _, v := range row {
			values = append(values, v)
		}
		builder = builder.Values(values...)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var inserted int64
	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		inserted, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("erro ao inserir vendas: %w", err)
	}

	return int(inserted), nil
}
