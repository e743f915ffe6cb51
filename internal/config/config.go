package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"aaru/pkg/db"
	"aaru/pkg/redisclient"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

// StorageConfig selects the snapshot backend: memory, redis or postgres.
type StorageConfig struct {
	Backend string `yaml:"backend"`
}

type MQConfig struct {
	Enabled bool   `yaml:"enabled"`
	URL     string `yaml:"url"`
}

type JWTConfig struct {
	Secret string `yaml:"secret"`
}

// AuthConfig holds the single user's bcrypt-hashed passphrase.
type AuthConfig struct {
	PasswordHash string `yaml:"password_hash"`
}

type WisdomConfig struct {
	URL            string `yaml:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type Config struct {
	Server  ServerConfig       `yaml:"server"`
	Storage StorageConfig      `yaml:"storage"`
	DB      db.Config          `yaml:"db"`
	Redis   redisclient.Config `yaml:"redis"`
	MQ      MQConfig           `yaml:"mq"`
	JWT     JWTConfig          `yaml:"jwt"`
	Auth    AuthConfig         `yaml:"auth"`
	Wisdom  WisdomConfig       `yaml:"wisdom"`
}

// Load reads the YAML config at path and applies environment overrides.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	overrideFromEnv(&cfg)

	if cfg.Server.Port == "" {
		cfg.Server.Port = ":8080"
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = "memory"
	}
	if cfg.Wisdom.TimeoutSeconds <= 0 {
		cfg.Wisdom.TimeoutSeconds = 5
	}
	return &cfg, nil
}

func overrideFromEnv(cfg *Config) {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		cfg.Server.Port = port
	}
	if backend := os.Getenv("STORAGE_BACKEND"); backend != "" {
		cfg.Storage.Backend = backend
	}
	if host := os.Getenv("DB_HOST"); host != "" {
		cfg.DB.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.DB.Port = p
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		cfg.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.DB.Password = password
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		cfg.DB.Name = name
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}
	if url := os.Getenv("MQ_URL"); url != "" {
		cfg.MQ.URL = url
		cfg.MQ.Enabled = true
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}
	if hash := os.Getenv("AUTH_PASSWORD_HASH"); hash != "" {
		cfg.Auth.PasswordHash = hash
	}
	if url := os.Getenv("WISDOM_URL"); url != "" {
		cfg.Wisdom.URL = url
	}
}
