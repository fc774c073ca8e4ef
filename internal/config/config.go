package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Backend   BackendConfig
	Board     BoardConfig
	UI        UIConfig
	Store     StoreConfig
	Printer   PrinterConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

type BoardConfig struct {
	PollInterval time.Duration
	KeyIdleClear time.Duration
}

type UIConfig struct {
	BannerTTL      time.Duration
	RedirectDelay  time.Duration
	PrintStepDelay time.Duration
}

type StoreConfig struct {
	Path string
}

type PrinterConfig struct {
	Type    string
	USBPath string
	Address string
	Width   int
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "counter-terminal")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("BACKEND_BASE_URL", "https://lotusbackend.vercel.app/api")
	viper.SetDefault("BACKEND_TIMEOUT_MS", 15000)
	viper.SetDefault("BOARD_POLL_INTERVAL_MS", 3000)
	viper.SetDefault("BOARD_KEY_IDLE_CLEAR_MS", 2000)
	viper.SetDefault("UI_BANNER_TTL_MS", 3000)
	viper.SetDefault("UI_REDIRECT_DELAY_MS", 3000)
	viper.SetDefault("UI_PRINT_STEP_DELAY_MS", 1000)
	viper.SetDefault("STORE_PATH", "./counter.db")
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PRINTER_WIDTH", 32)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Backend: BackendConfig{
			BaseURL: viper.GetString("BACKEND_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("BACKEND_TIMEOUT_MS")) * time.Millisecond,
		},
		Board: BoardConfig{
			PollInterval: time.Duration(viper.GetInt("BOARD_POLL_INTERVAL_MS")) * time.Millisecond,
			KeyIdleClear: time.Duration(viper.GetInt("BOARD_KEY_IDLE_CLEAR_MS")) * time.Millisecond,
		},
		UI: UIConfig{
			BannerTTL:      time.Duration(viper.GetInt("UI_BANNER_TTL_MS")) * time.Millisecond,
			RedirectDelay:  time.Duration(viper.GetInt("UI_REDIRECT_DELAY_MS")) * time.Millisecond,
			PrintStepDelay: time.Duration(viper.GetInt("UI_PRINT_STEP_DELAY_MS")) * time.Millisecond,
		},
		Store: StoreConfig{
			Path: viper.GetString("STORE_PATH"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
			Width:   viper.GetInt("PRINTER_WIDTH"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}
