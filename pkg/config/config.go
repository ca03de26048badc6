package config

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

func New() (Config, error) {
	privateKey, err := privateKeyFromEnv("PRIVATE_KEY")
	if err != nil {
		return Config{}, err
	}

	return Config{
		Hostname:            requireEnv("HOSTNAME"),
		Debug:               envAsBool("DEBUG", false),
		Postgresql: Postgresql{
			Host:         requireEnv("DATABASE_HOST"),
			Port:         requireEnvAsInt("DATABASE_PORT"),
			Username:     requireEnv("DATABASE_USERNAME"),
			Password:     requireEnv("DATABASE_PASSWORD"),
			DatabaseName: requireEnv("DATABASE_NAME"),
		},
		Redis: Redis{
			Host: requireEnv("REDIS_HOST"),
			Port: requireEnvAsInt("REDIS_PORT"),
		},
		Authentication: Authentication{
			PrivateKey:                    privateKey,
			RefreshTokenSecretKey:         requireEnv("REFRESH_TOKEN_SECRET_KEY"),
			AccessTokenExpirationSeconds:  envAsInt("ACCESS_TOKEN_EXPIRATION_SECONDS", 900),
			RefreshTokenExpirationSeconds: envAsInt("REFRESH_TOKEN_EXPIRATION_SECONDS", 86400),
		},
		GitHub: GitHub{
			BaseURL: envOrDefault("GITHUB_BASE_URL", "https://api.github.com"),
			Token:   os.Getenv("GITHUB_TOKEN"),
		},
		ActivationDelay:     time.Duration(envAsInt("ACTIVATION_DELAY_SECONDS", 10)) * time.Second,
		ProvisionerInterval: time.Duration(envAsInt("PROVISIONER_INTERVAL_SECONDS", 1)) * time.Second,
		ReconcilerInterval:  time.Duration(envAsInt("RECONCILER_INTERVAL_SECONDS", 300)) * time.Second,
	}, nil
}

type Config struct {
	Hostname            string
	Debug               bool
	Postgresql          Postgresql
	Redis               Redis
	Authentication      Authentication
	GitHub              GitHub
	ActivationDelay     time.Duration
	ProvisionerInterval time.Duration
	ReconcilerInterval  time.Duration
}

type Postgresql struct {
	Host         string
	Port         int
	Username     string
	Password     string
	DatabaseName string
}

type Redis struct {
	Host string
	Port int
}

type Authentication struct {
	PrivateKey                    *rsa.PrivateKey
	RefreshTokenSecretKey         string
	AccessTokenExpirationSeconds  int
	RefreshTokenExpirationSeconds int
}

type GitHub struct {
	BaseURL string
	Token   string
}

func privateKeyFromEnv(key string) (*rsa.PrivateKey, error) {
	value := requireEnv(key)
	block, _ := pem.Decode([]byte(value))
	if block == nil {
		return nil, errors.New("failed to decode private key as PEM")
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %v", err)
	}
	return privateKey, nil
}

func requireEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		panic(fmt.Sprintf("can't find environment variable: %s", key))
	}
	return value
}

func requireEnvAsInt(key string) int {
	value, err := strconv.Atoi(requireEnv(key))
	if err != nil {
		panic(fmt.Sprintf("can't parse %s as integer: %s", key, err))
	}
	return value
}

func envOrDefault(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func envAsInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		panic(fmt.Sprintf("can't parse %s as integer: %s", key, err))
	}
	return i
}

func envAsBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		panic(fmt.Sprintf("can't parse %s as bool: %s", key, err))
	}
	return b
}
