package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// CompanySettings is the branding singleton shown on every rendered page.
type CompanySettings struct {
	CompanyName    string
	Tagline        string
	CurrencySymbol string
}

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	RateLimit     string

	Company CompanySettings
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("COMPANY_NAME", "AccuFlow ERP")
	viper.SetDefault("COMPANY_TAGLINE", "Web-Based Professional Accounting System")
	viper.SetDefault("CURRENCY_SYMBOL", "৳")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.Company = CompanySettings{
		CompanyName:    viper.GetString("COMPANY_NAME"),
		Tagline:        viper.GetString("COMPANY_TAGLINE"),
		CurrencySymbol: viper.GetString("CURRENCY_SYMBOL"),
	}

	return cfg, nil
}
