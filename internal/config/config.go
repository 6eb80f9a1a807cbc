package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Auth     AuthConfig
	Storage  StorageConfig
	Payroll  PayrollConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	Mode        string // "postgres" or "demo" (session-only in-memory store)
	LogLevel    string
	FrontendURL string
}

// AuthConfig holds the sign-in bootstrap rules.
type AuthConfig struct {
	// BootstrapAdminEmail is granted the admin role on first sign-in when no
	// user record exists yet.
	BootstrapAdminEmail string
	// AdminAccessCode gates viewer account self-registration.
	AdminAccessCode string
}

type StorageConfig struct {
	Type     string
	BasePath string
	BaseURL  string
}

// PayrollConfig exposes the attendance policies that the original deployment
// hardcoded.
type PayrollConfig struct {
	// HalfDayPolicy is "full-base" (half-day adds its custom amount on top of
	// the full daily wage) or "half-base" (base wage is halved).
	HalfDayPolicy string
	// EditWindow is "today-only" or "current-week".
	EditWindow string
}

func Load() (*Config, error) {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "siteledger"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		Mode:        getEnv("APP_MODE", "postgres"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	config.Auth = AuthConfig{
		BootstrapAdminEmail: getEnv("BOOTSTRAP_ADMIN_EMAIL", ""),
		AdminAccessCode:     getEnv("ADMIN_ACCESS_CODE", ""),
	}

	config.Storage = StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "local"),
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/uploads"),
	}

	config.Payroll = PayrollConfig{
		HalfDayPolicy: getEnv("PAYROLL_HALF_DAY_POLICY", "full-base"),
		EditWindow:    getEnv("ATTENDANCE_EDIT_WINDOW", "today-only"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.App.Mode != "postgres" && c.App.Mode != "demo" {
		return fmt.Errorf("APP_MODE must be postgres or demo, got %q", c.App.Mode)
	}
	if c.App.Mode == "postgres" && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Auth.BootstrapAdminEmail == "" {
		return fmt.Errorf("BOOTSTRAP_ADMIN_EMAIL is required")
	}
	if c.Auth.AdminAccessCode == "" {
		return fmt.Errorf("ADMIN_ACCESS_CODE is required")
	}
	if c.Payroll.HalfDayPolicy != "full-base" && c.Payroll.HalfDayPolicy != "half-base" {
		return fmt.Errorf("PAYROLL_HALF_DAY_POLICY must be full-base or half-base, got %q", c.Payroll.HalfDayPolicy)
	}
	if c.Payroll.EditWindow != "today-only" && c.Payroll.EditWindow != "current-week" {
		return fmt.Errorf("ATTENDANCE_EDIT_WINDOW must be today-only or current-week, got %q", c.Payroll.EditWindow)
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
