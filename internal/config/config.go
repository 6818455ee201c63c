package config

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Storage settings
	DBPath   string `env:"VAULT_DB_PATH"`
	SaltFile string `env:"VAULT_SALT_FILE"`

	// Session settings
	LockMinutes int `env:"VAULT_LOCK_MINUTES"`

	// Tooling
	Debug   bool `env:"VAULT_DEBUG"`
	Version bool `env:"-"` // show version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to vault SQLite DB")
	flag.StringVar(&cfg.SaltFile, "salt-file", cfg.SaltFile, "path to KDF salt file")
	flag.IntVar(&cfg.LockMinutes, "lock-minutes", cfg.LockMinutes, "inactivity window before auto-lock, minutes")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "verbose logging")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show version and exit")

	flag.Parse()

	// Defaults
	if cfg.LockMinutes <= 0 {
		cfg.LockMinutes = 30
	}
	if cfg.DBPath == "" || cfg.SaltFile == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			home, _ := os.UserHomeDir()
			base = home
		}
		dir := filepath.Join(base, "SecretVault")
		if cfg.DBPath == "" {
			cfg.DBPath = filepath.Join(dir, "vault.sqlite")
		}
		if cfg.SaltFile == "" {
			cfg.SaltFile = filepath.Join(dir, "salt.bin")
		}
	}

	return cfg
}

// LockTimeout возвращает окно бездействия как Duration.
func (c *Config) LockTimeout() time.Duration {
	return time.Duration(c.LockMinutes) * time.Minute
}
