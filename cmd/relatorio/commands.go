package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/infrastructure/cache"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/infrastructure/datasource"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/infrastructure/integrator/geo"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/config"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/export"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/presenter"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/usecases/forecasting"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/usecases/insighting"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/usecases/recordstore"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/pkg/log"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/pkg/utils"
	"github.com/spf13/cobra"
)

var (
	month   string
	horizon int
	output  string
	asJSON  bool
)

var rootCmd = &cobra.Command{
	Use:           "relatorio",
	Short:         "Relatórios do dashboard de vendas",
	Long:          "Gera os KPIs e a previsão de faturamento a partir da mesma fonte configurada para a API.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var kpisCmd = &cobra.Command{
	Use:   "kpis",
	Short: "Imprime os KPIs gerais do mês",
	RunE:  runKpis,
}

var previsaoCmd = &cobra.Command{
	Use:   "previsao",
	Short: "Projeta o faturamento mensal",
	RunE:  runForecast,
}

// Execute executa o comando raiz
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&output, "saida", "o", "", "arquivo de saída (.csv ou .xlsx); vazio imprime no terminal")
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "imprime o resultado completo em JSON")

	kpisCmd.Flags().StringVarP(&month, "mes", "m", domain.AllMonths, "mês no formato YYYY-MM ou Todos")
	previsaoCmd.Flags().IntVarP(&horizon, "horizonte", "n", 3, "meses a projetar (1 a 12)")

	rootCmd.AddCommand(kpisCmd)
	rootCmd.AddCommand(previsaoCmd)
}

type app struct {
	cfg   *config.Config
	store *recordstore.Store
	close func()
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}
	log.Setup(cfg.App.LogLevel)

	source, closeSource, err := datasource.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, store: recordstore.NewStore(source), close: closeSource}, nil
}

func runKpis(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	service := insighting.NewService(a.store, geo.NewClient(a.cfg.Geo), domain.SelectionPolicy{
		DefaultSalespeople: a.cfg.Filters.DefaultSalespeople,
		DefaultServices:    a.cfg.Filters.DefaultServices,
	})

	view, err := service.Overview(ctx, month)
	if err != nil {
		return err
	}
	cards := presenter.OverviewCards(view.Comparison)

	if output == "" {
		w := cmd.OutOrStdout()
		if asJSON {
			fmt.Fprintln(w, utils.PrettyJson(map[string]any{"overview": view, "cards": cards}))
			return nil
		}
		fmt.Fprintf(w, "KPIs de %s\n", view.Month)
		for _, c := range cards {
			if c.ChangeLabel != "" {
				fmt.Fprintf(w, "  %-28s %16s  %s %s\n", c.Title, c.Value, c.Change, c.ChangeLabel)
				continue
			}
			fmt.Fprintf(w, "  %-28s %16s  %s\n", c.Title, c.Value, c.Change)
		}
		return nil
	}

	if ext := strings.ToLower(filepath.Ext(output)); ext != ".csv" {
		return fmt.Errorf("formato de saída não suportado para kpis: %s", ext)
	}
	return writeFile(output, func(w io.Writer) error {
		return export.WriteKpiCSV(w, view.Month, cards)
	})
}

func runForecast(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()

	modelStore, err := cache.NewModelStore(a.cfg.Cache)
	if err != nil {
		modelStore = cache.NewNoopModelStore()
	}

	service := forecasting.NewService(a.store, modelStore, forecasting.Config{
		FourierOrder:  a.cfg.Forecast.FourierOrder,
		MinMonths:     a.cfg.Forecast.MinMonths,
		IntervalWidth: a.cfg.Forecast.IntervalWidth,
		Iterations:    a.cfg.Forecast.Iterations,
	})

	result, err := service.Generate(ctx, horizon)
	if err != nil {
		return err
	}

	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case "":
		w := cmd.OutOrStdout()
		if asJSON {
			fmt.Fprintln(w, utils.PrettyJson(result))
			return nil
		}
		fmt.Fprintf(w, "Modelo %s (reaproveitado: %t)\n", result.ModelID, result.Reused)
		for _, p := range result.Future {
			fmt.Fprintf(w, "  %s  %s  [%s, %s]\n", p.Month,
				presenter.Money(p.PredictedRevenue), presenter.Money(p.LowerBound), presenter.Money(p.UpperBound))
		}
		return nil
	case ".csv":
		return writeFile(output, func(w io.Writer) error {
			return export.WriteForecastCSV(w, result.Future)
		})
	case ".xlsx":
		return writeFile(output, func(w io.Writer) error {
			return export.WriteForecastXLSX(w, result.Future)
		})
	default:
		return fmt.Errorf("formato de saída não suportado: %s", ext)
	}
}

func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
