package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	aws_handler "tracker/src/utils/aws"
)

type Config struct {
	Service         ServiceConfig        `mapstructure:"service"`
	Databases       DatabasesConfig      `mapstructure:"databases"`
	ExternalClients ExternalClientConfig `mapstructure:"externalClients"`
	Sync            SyncConfig           `mapstructure:"sync"`
	Cache           CacheConfig          `mapstructure:"cache"`
	AWS             AWSConfig            `mapstructure:"aws"`
}

type ServiceType string

const (
	API    ServiceType = "API"
	WORKER ServiceType = "WORKER"
)

type ServiceConfig struct {
	Type     ServiceType `mapstructure:"type"`
	Port     string      `mapstructure:"port"`
	LogLevel string      `mapstructure:"logLevel"`
}

type DatabasesConfig struct {
	SQL   SQLConfig   `mapstructure:"sql"`
	Redis RedisConfig `mapstructure:"redis"`
}

type SQLConfig struct {
	Host             string `mapstructure:"host"`
	Port             string `mapstructure:"port"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	PasswordSecret   string `mapstructure:"passwordSecret"`
	Database         string `mapstructure:"database"`
	ConnectionString string `mapstructure:"connection_string"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
}

type ExternalClientConfig struct {
	RemoteStore RemoteStoreConfig `mapstructure:"remoteStore"`
	MarketData  MarketDataConfig  `mapstructure:"marketData"`
}

type RemoteStoreConfig struct {
	BaseURL string `mapstructure:"baseUrl"`
	// Token is the service credential used by the worker's scheduled syncs,
	// where no caller-supplied bearer token is available.
	Token string `mapstructure:"token"`
}

type MarketDataConfig struct {
	BaseURL string `mapstructure:"baseUrl"`
	APIKey  string `mapstructure:"apiKey"`
}

type SyncConfig struct {
	// CronSpec drives the worker's periodic reconciliation passes.
	CronSpec  string   `mapstructure:"cronSpec"`
	ClientIDs []string `mapstructure:"clientIds"`
}

type CacheConfig struct {
	QuoteTTLSeconds    int `mapstructure:"quoteTTLSeconds"`
	HoldingsTTLSeconds int `mapstructure:"holdingsTTLSeconds"`
}

type AWSConfig struct {
	Region string `mapstructure:"region"`
}

// LoadConfig reads settings/appsettings.yaml, overlaid with
// appsettings.<ENV>.yaml when env is non-empty. A local .env file is loaded
// first so ${VAR} references in the yaml resolve during development.
func LoadConfig(path, env string) (*Config, error) {
	// Missing .env is fine outside local development.
	_ = godotenv.Load()

	var cfg Config

	viper.AddConfigPath(path)
	viper.SetConfigName("appsettings")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	if env != "" {
		viper.SetConfigName("appsettings." + env)
		if err := viper.MergeInConfig(); err != nil {
			return nil, err
		}
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.expandEnv()

	if err := cfg.resolveSecrets(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// expandEnv resolves ${VAR} references in the credential-bearing fields.
func (c *Config) expandEnv() {
	c.Databases.SQL.Password = os.ExpandEnv(c.Databases.SQL.Password)
	c.Databases.SQL.ConnectionString = os.ExpandEnv(c.Databases.SQL.ConnectionString)
	c.Databases.Redis.Password = os.ExpandEnv(c.Databases.Redis.Password)
	c.ExternalClients.RemoteStore.Token = os.ExpandEnv(c.ExternalClients.RemoteStore.Token)
	c.ExternalClients.MarketData.APIKey = os.ExpandEnv(c.ExternalClients.MarketData.APIKey)
}

// resolveSecrets fetches the database password from AWS Secrets Manager when
// the config names a secret instead of carrying the password inline.
func (c *Config) resolveSecrets() error {
	if c.Databases.SQL.PasswordSecret == "" {
		return nil
	}
	handler, err := aws_handler.NewAWSHandler(c.AWS.Region)
	if err != nil {
		return fmt.Errorf("failed to init AWS session: %w", err)
	}
	password, err := handler.SecretManager.GetSecretValue(c.Databases.SQL.PasswordSecret)
	if err != nil {
		return fmt.Errorf("failed to fetch database password secret: %w", err)
	}
	c.Databases.SQL.Password = password
	return nil
}
