package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Tipos de fonte da tabela de vendas
const (
	SourceCSV      = "csv"
	SourceXLSX     = "xlsx"
	SourcePostgres = "postgres"
	SourceMinio    = "minio"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Source          Source          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	ObjectStorage   ObjectStorage   `mapstructure:",squash"`
	Geo             Geo             `mapstructure:",squash"`
	Forecast        Forecast        `mapstructure:",squash"`
	Cache           Cache           `mapstructure:",squash"`
	SnapshotRefresh SnapshotRefresh `mapstructure:",squash"`
	Filters         Filters         `mapstructure:",squash"`
	Cors            Cors            `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Source struct {
	Kind  string `mapstructure:"source_kind"`
	Path  string `mapstructure:"source_path"`
	Sheet string `mapstructure:"source_sheet"`
	Table string `mapstructure:"source_table"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type ObjectStorage struct {
	Endpoint  string `mapstructure:"object_storage_endpoint"`
	AccessKey string `mapstructure:"object_storage_access_key"`
	SecretKey string `mapstructure:"object_storage_secret_key"`
	Bucket    string `mapstructure:"object_storage_bucket"`
	Object    string `mapstructure:"object_storage_object"`
	Region    string `mapstructure:"object_storage_region"`
	UseSSL    bool   `mapstructure:"object_storage_use_ssl"`
}

type Geo struct {
	URL      string        `mapstructure:"geo_url"`
	StateKey string        `mapstructure:"geo_state_key"`
	Timeout  time.Duration `mapstructure:"geo_timeout"`
}

type Forecast struct {
	FourierOrder  int     `mapstructure:"forecast_fourier_order"`
	MinMonths     int     `mapstructure:"forecast_min_months"`
	IntervalWidth float64 `mapstructure:"forecast_interval_width"`
	Iterations    int     `mapstructure:"forecast_iterations"`
}

type Cache struct {
	Enabled       bool          `mapstructure:"cache_enabled"`
	RedisURL      string        `mapstructure:"redis_url"`
	RedisHost     string        `mapstructure:"redis_host"`
	RedisPort     string        `mapstructure:"redis_port"`
	RedisPassword string        `mapstructure:"redis_password"`
	RedisDB       int           `mapstructure:"redis_db"`
	ModelTTL      time.Duration `mapstructure:"cache_model_ttl"`
}

type SnapshotRefresh struct {
	CronSchedule string `mapstructure:"snapshot_refresh_cron"`
	Enabled      bool   `mapstructure:"snapshot_refresh_enabled"`
}

type Filters struct {
	DefaultSalespeople []string `mapstructure:"filter_default_salespeople"`
	DefaultServices    []string `mapstructure:"filter_default_services"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")

	viper.SetDefault("SOURCE_KIND", SourceCSV)
	viper.SetDefault("SOURCE_PATH", "dados_vendas_ficticios.csv")
	viper.SetDefault("SOURCE_SHEET", "")
	viper.SetDefault("SOURCE_TABLE", "vendas")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/vendas?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("OBJECT_STORAGE_ENDPOINT", "localhost:9000")
	viper.SetDefault("OBJECT_STORAGE_ACCESS_KEY", "")
	viper.SetDefault("OBJECT_STORAGE_SECRET_KEY", "")
	viper.SetDefault("OBJECT_STORAGE_BUCKET", "dashboard-vendas")
	viper.SetDefault("OBJECT_STORAGE_OBJECT", "dados_vendas_ficticios.csv")
	viper.SetDefault("OBJECT_STORAGE_REGION", "us-east-1")
	viper.SetDefault("OBJECT_STORAGE_USE_SSL", false)

	viper.SetDefault("GEO_URL", "https://raw.githubusercontent.com/codeforamerica/click_that_hood/master/public/data/brazil-states.geojson")
	viper.SetDefault("GEO_STATE_KEY", "sigla")
	viper.SetDefault("GEO_TIMEOUT", "10s")

	viper.SetDefault("FORECAST_FOURIER_ORDER", 3)
	viper.SetDefault("FORECAST_MIN_MONTHS", 24)      // Dois ciclos anuais
	viper.SetDefault("FORECAST_INTERVAL_WIDTH", 0.8) // Banda de 80%
	viper.SetDefault("FORECAST_ITERATIONS", 10)

	viper.SetDefault("CACHE_ENABLED", false)
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("REDIS_HOST", "127.0.0.1")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CACHE_MODEL_TTL", "24h")

	viper.SetDefault("SNAPSHOT_REFRESH_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("SNAPSHOT_REFRESH_ENABLED", false)

	viper.SetDefault("FILTER_DEFAULT_SALESPEOPLE", "")
	viper.SetDefault("FILTER_DEFAULT_SERVICES", "")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Filters.DefaultSalespeople = compact(config.Filters.DefaultSalespeople)
	config.Filters.DefaultServices = compact(config.Filters.DefaultServices)
	config.Cors.AllowedOrigins = compact(config.Cors.AllowedOrigins)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate confere os valores que não têm como ser corrigidos em tempo de execução
func (c *Config) Validate() error {
	switch c.Source.Kind {
	case SourceCSV, SourceXLSX, SourcePostgres, SourceMinio:
	default:
		return fmt.Errorf("invalid SOURCE_KIND %q", c.Source.Kind)
	}

	if c.Forecast.IntervalWidth <= 0 || c.Forecast.IntervalWidth >= 1 {
		return fmt.Errorf("FORECAST_INTERVAL_WIDTH must be between 0 and 1, got %v", c.Forecast.IntervalWidth)
	}

	if c.Forecast.MinMonths < 2 {
		return fmt.Errorf("FORECAST_MIN_MONTHS must be at least 2, got %d", c.Forecast.MinMonths)
	}

	return nil
}

// compact remove itens vazios gerados por listas vazias no ambiente
func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
