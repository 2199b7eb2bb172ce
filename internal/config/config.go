package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DBConfig holds the connection settings for one database role.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
}

// Config pairs the MySQL source with the PostgreSQL target.
type Config struct {
	Source DBConfig `mapstructure:"source"`
	Target DBConfig `mapstructure:"target"`
}

const (
	defaultMySQLPort    = 3306
	defaultPostgresPort = 5432
)

// Load reads both roles from viper and validates them.
// Validation happens before any connection attempt so that a broken
// config never touches a database.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Source.Port == 0 {
		cfg.Source.Port = defaultMySQLPort
	}
	if cfg.Target.Port == 0 {
		cfg.Target.Port = defaultPostgresPort
	}

	var missing []string
	missing = append(missing, cfg.Source.missingKeys("source")...)
	missing = append(missing, cfg.Target.missingKeys("target")...)
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required config keys: %s", strings.Join(missing, ", "))
	}

	return &cfg, nil
}

func (c DBConfig) missingKeys(role string) []string {
	var missing []string
	if c.Host == "" {
		missing = append(missing, role+".host")
	}
	if c.User == "" {
		missing = append(missing, role+".user")
	}
	if c.Database == "" {
		missing = append(missing, role+".database")
	}
	return missing
}

// MySQLDSN renders the source settings as a go-sql-driver DSN.
func (c DBConfig) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		c.User, c.Password, c.Host, c.Port, c.Database)
}

// PostgresDSN renders the target settings in lib/pq keyword form.
func (c DBConfig) PostgresDSN() string {
	parts := []string{
		fmt.Sprintf("host=%s", c.Host),
		fmt.Sprintf("port=%d", c.Port),
		fmt.Sprintf("user=%s", c.User),
		fmt.Sprintf("dbname=%s", c.Database),
		"sslmode=disable",
	}
	if c.Password != "" {
		parts = append(parts, fmt.Sprintf("password=%s", c.Password))
	}
	return strings.Join(parts, " ")
}
