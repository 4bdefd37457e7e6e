package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Scraper
	ScrapeBaseURL string
	ScrapeTimeout time.Duration

	// CORS
	CORSAllowedOrigins []string

	// Rate limiting, in ulule/limiter notation (e.g. "100-H").
	RateLimit string

	// Scheduler
	SchedulerEnabled  bool
	SchedulerTimezone string
	ScheduledFrom     string
	ScheduledTo       string
	CronDailySpec     string
	CronWeeklySpec    string
	CronMonthlySpec   string
	CronYearlySpec    string
}

// LoadConfig loads configuration from environment variables and .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("SCRAPE_BASE_URL", "")
	viper.SetDefault("SCRAPE_TIMEOUT", "30s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	viper.SetDefault("RATE_LIMIT", "100-H")
	viper.SetDefault("SCHEDULER_ENABLED", true)
	viper.SetDefault("SCHEDULER_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("SCHEDULED_FROM", "USD")
	viper.SetDefault("SCHEDULED_TO", "INR")
	// Mirror the original deployment: 14:20 local, daily / Saturday /
	// 1st of month / January 1st.
	viper.SetDefault("CRON_DAILY_SPEC", "20 14 * * *")
	viper.SetDefault("CRON_WEEKLY_SPEC", "20 14 * * 6")
	viper.SetDefault("CRON_MONTHLY_SPEC", "20 14 1 * *")
	viper.SetDefault("CRON_YEARLY_SPEC", "20 14 1 1 *")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.ScrapeBaseURL = viper.GetString("SCRAPE_BASE_URL")

	scrapeTimeoutStr := viper.GetString("SCRAPE_TIMEOUT")
	scrapeTimeout, err := time.ParseDuration(scrapeTimeoutStr)
	if err != nil {
		scrapeTimeout = 30 * time.Second
		log.Printf("Warning: Invalid value for SCRAPE_TIMEOUT ('%s'). Defaulting to %s.\n", scrapeTimeoutStr, scrapeTimeout)
	}
	cfg.ScrapeTimeout = scrapeTimeout

	cfg.CORSAllowedOrigins = viper.GetStringSlice("CORS_ALLOWED_ORIGINS")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.SchedulerEnabled = viper.GetBool("SCHEDULER_ENABLED")
	cfg.SchedulerTimezone = viper.GetString("SCHEDULER_TIMEZONE")
	cfg.ScheduledFrom = viper.GetString("SCHEDULED_FROM")
	cfg.ScheduledTo = viper.GetString("SCHEDULED_TO")
	cfg.CronDailySpec = viper.GetString("CRON_DAILY_SPEC")
	cfg.CronWeeklySpec = viper.GetString("CRON_WEEKLY_SPEC")
	cfg.CronMonthlySpec = viper.GetString("CRON_MONTHLY_SPEC")
	cfg.CronYearlySpec = viper.GetString("CRON_YEARLY_SPEC")

	return cfg, nil
}
