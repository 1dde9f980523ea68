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

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Telegram    Telegram    `mapstructure:",squash"`
	TikTok      TikTok      `mapstructure:",squash"`
	DailyReport DailyReport `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Telegram struct {
	BotToken      string `mapstructure:"telegram_bot_token"`
	APIURL        string `mapstructure:"telegram_api_url"`
	WebhookSecret string `mapstructure:"telegram_webhook_secret"`
	WebhookURL    string `mapstructure:"telegram_webhook_url"`
	// AllowedUserIDs é a lista JSON crua (ex: [123, "456"]); o parse acontece no access gate
	AllowedUserIDs string `mapstructure:"telegram_allowed_user_ids"`
	AdminUserID    string `mapstructure:"telegram_admin_user_id"`
}

type TikTok struct {
	BaseURL        string         `mapstructure:"tiktok_base_url"`
	Version        string         `mapstructure:"tiktok_version"`
	URL            string         `mapstructure:"-"`
	AccessToken    string         `mapstructure:"tiktok_access_token"`
	AdvertiserID   string         `mapstructure:"tiktok_advertiser_id"`
	CampaignID     string         `mapstructure:"tiktok_campaign_id"`
	StoreID        string         `mapstructure:"tiktok_store_id"`
	Timezone       string         `mapstructure:"tiktok_timezone"`
	TimeoutSeconds int            `mapstructure:"tiktok_timeout_seconds"`
	Location       *time.Location `mapstructure:"-"`
}

type DailyReport struct {
	CronSchedule string `mapstructure:"daily_report_cron"`
	ChatID       int64  `mapstructure:"daily_report_chat_id"`
	Enabled      bool   `mapstructure:"daily_report_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 8080)

	viper.SetDefault("TELEGRAM_API_URL", "https://api.telegram.org")
	viper.SetDefault("TELEGRAM_BOT_TOKEN", "")
	viper.SetDefault("TELEGRAM_WEBHOOK_SECRET", "")
	viper.SetDefault("TELEGRAM_WEBHOOK_URL", "")
	viper.SetDefault("TELEGRAM_ALLOWED_USER_IDS", "[]")
	viper.SetDefault("TELEGRAM_ADMIN_USER_ID", "")

	viper.SetDefault("TIKTOK_BASE_URL", "https://business-api.tiktok.com/open_api")
	viper.SetDefault("TIKTOK_VERSION", "v1.3")
	viper.SetDefault("TIKTOK_ACCESS_TOKEN", "")
	viper.SetDefault("TIKTOK_ADVERTISER_ID", "")
	viper.SetDefault("TIKTOK_CAMPAIGN_ID", "")
	viper.SetDefault("TIKTOK_STORE_ID", "")
	viper.SetDefault("TIKTOK_TIMEZONE", "Asia/Jakarta")
	viper.SetDefault("TIKTOK_TIMEOUT_SECONDS", 30)

	viper.SetDefault("DAILY_REPORT_CRON", "0 21 * * *") // Todos os dias às 21h
	viper.SetDefault("DAILY_REPORT_CHAT_ID", 0)
	viper.SetDefault("DAILY_REPORT_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
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

	if err := config.finalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// finalize calcula os campos derivados e valida o que não pode ficar para o primeiro request
func (c *Config) finalize() error {
	c.TikTok.URL = fmt.Sprintf("%s/%s", c.TikTok.BaseURL, c.TikTok.Version)

	loc, err := time.LoadLocation(c.TikTok.Timezone)
	if err != nil {
		return fmt.Errorf("config: timezone inválido %q: %w", c.TikTok.Timezone, err)
	}
	c.TikTok.Location = loc

	if c.TikTok.TimeoutSeconds <= 0 {
		c.TikTok.TimeoutSeconds = 30
	}

	if c.Telegram.WebhookSecret == "" {
		logrus.Warn("TELEGRAM_WEBHOOK_SECRET vazio: todas as chamadas do webhook serão rejeitadas")
	}

	return nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
