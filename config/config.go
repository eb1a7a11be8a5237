// Package config lê a configuração do ambiente, com suporte a um arquivo
// .env em desenvolvimento.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      int
	RedisAddr string // vazio = registro apenas em memória
	LogLevel  string
	DevMode   bool
	RateLimit int // requisições por minuto por IP; 0 desliga
}

// Load carrega .env (se existir) e monta a configuração com os padrões do
// serviço.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:      getEnvAsInt("PORT", 8080),
		RedisAddr: getEnv("REDIS_ADDR", ""),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		DevMode:   getEnvAsBool("DEV_MODE", false),
		RateLimit: getEnvAsInt("RATE_LIMIT", 60),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
