// Package config carga la configuración del servicio desde variables de
// entorno, con un .env opcional para desarrollo.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// DBDSN vacío => repos in-memory (modo dev).
	DBDSN string

	JWTKey         string
	JWTAlgorithm   string
	AccessTokenTTL time.Duration
}

// Load lee el entorno. JWT_KEY es obligatoria: una clave por defecto firmaría
// tokens verificables por cualquiera.
func Load() (Config, error) {
	// .env es opcional; si no existe se sigue con el entorno real.
	_ = godotenv.Load()

	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		DBDSN:          os.Getenv("DB_DSN"),
		JWTKey:         os.Getenv("JWT_KEY"),
		JWTAlgorithm:   getEnv("JWT_ALGORITHM", "HS256"),
		AccessTokenTTL: parseDuration(getEnv("ACCESS_TOKEN_TTL", "15m"), 15*time.Minute),
	}

	if strings.TrimSpace(cfg.JWTKey) == "" {
		return Config{}, fmt.Errorf("config: JWT_KEY is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
