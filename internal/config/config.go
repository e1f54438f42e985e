package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabasePath string
	StaticDir    string
	ServerPort   string
}

func Load() *Config {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	return &Config{
		DatabasePath: getEnv("DATABASE_PATH", "amigo-fiel.db"),
		StaticDir:    getEnv("STATIC_DIR", "public"),
		ServerPort:   getEnv("SERVER_PORT", "3000"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
