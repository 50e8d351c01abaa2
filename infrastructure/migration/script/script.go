package main

import (
	"context"
	"flag"
	"strings"
	"time"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/infrastructure/database/postgres"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/infrastructure/repository"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/infrastructure/tabular"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/config"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
)

const (
	idLength   = 12
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	batchSize  = 500
)

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de carga da tabela de vendas...")
}

func generateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}

// reorder coloca as colunas da planilha na ordem da tabela do banco
func reorder(header []string, rows [][]string) ([][]string, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	positions := make([]int, len(repository.SalesColumns))
	for i, col := range repository.SalesColumns {
		pos, ok := index[col]
		if !ok {
			return nil, &missingColumnError{column: col}
		}
		positions[i] = pos
	}

	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		ordered := make([]string, len(positions))
		blank := true
		for i, pos := range positions {
			if pos < len(row) {
				ordered[i] = strings.TrimSpace(row[pos])
			}
			if ordered[i] != "" {
				blank = false
			}
		}
		if !blank {
			out = append(out, ordered)
		}
	}
	return out, nil
}

type missingColumnError struct {
	column string
}

func (e *missingColumnError) Error() string {
	return "coluna obrigatória ausente na planilha: " + e.column
}

func main() {
	setupLogger()

	path := flag.String("arquivo", "dados_vendas_ficticios.csv", "planilha de vendas (.csv ou .xlsx)")
	sheet := flag.String("aba", "", "aba da planilha xlsx")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	source, err := tabular.NewFileSource(*path, *sheet)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao abrir planilha")
	}

	table, err := source.Read(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao ler planilha")
	}

	rows, err := reorder(table.Header, table.Rows)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao mapear colunas")
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	repo := repository.NewSalesRepository(conn, cfg.Source.Table)
	if err := repo.EnsureTable(ctx); err != nil {
		logrus.WithError(err).Fatal("ERRO ao criar tabela de vendas")
	}

	logrus.Infof("Iniciando inserção de %d vendas em %s...", len(rows), cfg.Source.Table)
	startTime := time.Now()
	inserted := 0

	for start := 0; start < len(rows); start += batchSize {
		end := min(start+batchSize, len(rows))
		batch := rows[start:end]

		ids := make([]string, len(batch))
		for i := range batch {
			if ids[i], err = generateID(); err != nil {
				logrus.WithError(err).Fatal("ERRO ao gerar id")
			}
		}

		n, err := repo.InsertBatch(ctx, ids, batch)
		if err != nil {
			logrus.WithError(err).WithField("linha_inicial", start+1).Fatal("ERRO ao inserir lote de vendas")
		}
		inserted += n
		logrus.Infof("Progresso: %d/%d vendas inseridas", inserted, len(rows))
	}

	logrus.WithFields(logrus.Fields{
		"inseridas": inserted,
		"duracao":   time.Since(startTime).String(),
	}).Info("Carga da tabela de vendas concluída")
}
