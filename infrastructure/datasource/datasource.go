// Package datasource escolhe a origem da tabela de vendas conforme a configuração
package datasource

import (
	"context"
	"fmt"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/infrastructure/database/postgres"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/infrastructure/integrator/objectstore"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/infrastructure/repository"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/infrastructure/tabular"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/config"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/usecases/recordstore"
	"github.com/sirupsen/logrus"
)

// Open retorna a origem configurada e uma função para liberar seus recursos
func Open(ctx context.Context, cfg *config.Config) (recordstore.Source, func(), error) {
	noop := func() {}

	switch cfg.Source.Kind {
	case config.SourceCSV, config.SourceXLSX:
		source, err := tabular.NewFileSource(cfg.Source.Path, cfg.Source.Sheet)
		if err != nil {
			return nil, noop, err
		}
		return source, noop, nil

	case config.SourcePostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database)
		if err != nil {
			return nil, noop, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
		}
		logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
		return repository.NewSalesRepository(conn, cfg.Source.Table), func() { conn.Close() }, nil

	case config.SourceMinio:
		client, err := objectstore.NewClient(cfg.ObjectStorage)
		if err != nil {
			return nil, noop, fmt.Errorf("erro ao criar cliente do object storage: %w", err)
		}
		source, err := objectstore.NewSource(client, cfg.ObjectStorage, cfg.Source.Sheet)
		if err != nil {
			return nil, noop, err
		}
		return source, noop, nil
	}

	return nil, noop, fmt.Errorf("fonte de dados desconhecida: %s", cfg.Source.Kind)
}
