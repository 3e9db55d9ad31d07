package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Store     StoreConfig     `yaml:"store"`
	Eskiz     EskizConfig     `yaml:"eskiz"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// StoreConfig selects and configures the record store backend
type StoreConfig struct {
	Type            string `yaml:"type"`       // "firestore" or "memory"
	ProjectID       string `yaml:"project_id"` // Firestore project
	CredentialsFile string `yaml:"credentials_file"`
}

// EskizConfig contains SMS gateway settings
type EskizConfig struct {
	BaseURL  string `yaml:"base_url"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	From     string `yaml:"from"` // sender id
}

// AuthConfig contains the single-admin login settings
type AuthConfig struct {
	AdminUser         string `yaml:"admin_user"`
	AdminPasswordHash string `yaml:"admin_password_hash"` // bcrypt
	JWTSecret         string `yaml:"jwt_secret"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	SweepOverdueRentals string `yaml:"sweep_overdue_rentals"`
	// DebtCooldownHours suppresses repeat debt records (and repeat SMS)
	// for the same rental within the window.
	DebtCooldownHours int `yaml:"debt_cooldown_hours"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	if val := os.Getenv("STORE_TYPE"); val != "" {
		c.Store.Type = val
	}
	if val := os.Getenv("FIRESTORE_PROJECT_ID"); val != "" {
		c.Store.ProjectID = val
	}
	if val := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); val != "" {
		c.Store.CredentialsFile = val
	}

	if val := os.Getenv("ESKIZ_BASE_URL"); val != "" {
		c.Eskiz.BaseURL = val
	}
	if val := os.Getenv("ESKIZ_EMAIL"); val != "" {
		c.Eskiz.Email = val
	}
	if val := os.Getenv("ESKIZ_PASSWORD"); val != "" {
		c.Eskiz.Password = val
	}
	if val := os.Getenv("ESKIZ_FROM"); val != "" {
		c.Eskiz.From = val
	}

	if val := os.Getenv("ADMIN_USER"); val != "" {
		c.Auth.AdminUser = val
	}
	if val := os.Getenv("ADMIN_PASSWORD_HASH"); val != "" {
		c.Auth.AdminPasswordHash = val
	}
	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.Auth.JWTSecret = val
	}

	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
}

// Validate checks the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Store.Type {
	case "", "memory":
		c.Store.Type = "memory"
	case "firestore":
		if c.Store.ProjectID == "" {
			return fmt.Errorf("firestore project id is required")
		}
	default:
		return fmt.Errorf("unknown store type: %s", c.Store.Type)
	}

	if c.Eskiz.BaseURL == "" {
		c.Eskiz.BaseURL = "https://notify.eskiz.uz"
	}
	if c.Eskiz.From == "" {
		c.Eskiz.From = "4546"
	}

	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}
	if c.Auth.AdminUser == "" {
		c.Auth.AdminUser = "admin"
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	// Scheduler defaults
	if c.Scheduler.SweepOverdueRentals == "" {
		c.Scheduler.SweepOverdueRentals = "0 0 9 * * *" // 9 AM daily
	}
	if c.Scheduler.DebtCooldownHours <= 0 {
		c.Scheduler.DebtCooldownHours = 24
	}

	return nil
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
