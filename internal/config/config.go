package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type JWTConfig struct {
	AccessSecret     string `yaml:"access_secret"`
	RefreshSecret    string `yaml:"refresh_secret"`
	AccessExpireMin  int    `yaml:"access_expire_minutes"`
	RefreshExpireMin int    `yaml:"refresh_expire_minutes"`
}

type VerifyConfig struct {
	CodeLength       int `yaml:"code_length"`
	FreshnessMinutes int `yaml:"freshness_minutes"`
	BlockMinutes     int `yaml:"block_minutes"`
	MaxFailedBefore  int `yaml:"max_failed_before_block"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`
	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUser     string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
	} `yaml:"email"`
	JWT    JWTConfig    `yaml:"jwt"`
	Verify VerifyConfig `yaml:"verify"`
}

func LoadConfig() *Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}
	f, err := os.Open(path)
	if err != nil {
		panic("Failed to open config.yaml: " + err.Error())
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		panic("Failed to parse config.yaml: " + err.Error())
	}

	// sane defaults for everything the file may omit
	if cfg.JWT.AccessExpireMin <= 0 {
		cfg.JWT.AccessExpireMin = 60
	}
	if cfg.JWT.RefreshExpireMin <= 0 {
		cfg.JWT.RefreshExpireMin = 60 * 24 * 30
	}
	if cfg.Verify.CodeLength <= 0 {
		cfg.Verify.CodeLength = 6
	}
	if cfg.Verify.FreshnessMinutes <= 0 {
		cfg.Verify.FreshnessMinutes = 5
	}
	if cfg.Verify.BlockMinutes <= 0 {
		cfg.Verify.BlockMinutes = 5
	}
	if cfg.Verify.MaxFailedBefore <= 0 {
		cfg.Verify.MaxFailedBefore = 4
	}
	return &cfg
}
