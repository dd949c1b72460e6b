package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Cors             Cors             `mapstructure:",squash"`
	DashboardRefresh DashboardRefresh `mapstructure:",squash"`
	Report           Report           `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Database aponta para o diretório de arquivos CSV que servem de fonte de dados
type Database struct {
	DataDir      string `mapstructure:"data_dir"`
	SalesFile    string `mapstructure:"sales_file"`
	ProductsFile string `mapstructure:"products_file"`
	ClientsFile  string `mapstructure:"clients_file"`
	TeamFile     string `mapstructure:"team_file"`
	TrafficFile  string `mapstructure:"traffic_file"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type DashboardRefresh struct {
	Interval     time.Duration `mapstructure:"dashboard_refresh_interval"`
	CronSchedule string        `mapstructure:"dashboard_refresh_cron"`
	Enabled      bool          `mapstructure:"dashboard_refresh_enabled"`
}

// Report define o período de referência dos cards e o ano do mapa
type Report struct {
	Period  string `mapstructure:"report_period"`
	GeoYear int    `mapstructure:"geo_year"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("SALES_FILE", "sales.csv")
	viper.SetDefault("PRODUCTS_FILE", "products.csv")
	viper.SetDefault("CLIENTS_FILE", "clients.csv")
	viper.SetDefault("TEAM_FILE", "team.csv")
	viper.SetDefault("TRAFFIC_FILE", "site_traffic.csv")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	// Defaults para atualização do cache do dashboard
	viper.SetDefault("DASHBOARD_REFRESH_INTERVAL", "60s") // A cada 60 segundos
	viper.SetDefault("DASHBOARD_REFRESH_CRON", "")        // Quando preenchido substitui o intervalo
	viper.SetDefault("DASHBOARD_REFRESH_ENABLED", true)

	viper.SetDefault("REPORT_PERIOD", "2024-11") // Vazio usa o mês corrente
	viper.SetDefault("GEO_YEAR", 2024)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AllowEmptyEnv(true) // REPORT_PERIOD vazio é um valor válido
	viper.AutomaticEnv()      // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	if config.DashboardRefresh.Interval <= 0 {
		config.DashboardRefresh.Interval = 60 * time.Second
	}

	return config, nil
}

// Path resolve o caminho completo de um arquivo de dados
func (d Database) Path(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(d.DataDir, file)
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
