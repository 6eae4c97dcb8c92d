package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr string

	DBDriver string
	DBDSN    string

	// SessionStore selects the snapshot backend: memory|sql|redis.
	SessionStore  string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	AuthSecret string

	// GatePassHash is a bcrypt hash of the shared access password. When unset,
	// GatePassword is compared directly (local development only).
	GatePassHash string
	GatePassword string

	CORSOrigins []string

	// Defaults applied when a session request omits total or seed.
	DefaultTotal int
	DefaultSeed  int
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr:      addr,
		DBDriver:      envOr("DB_DRIVER", "sqlite"),
		DBDSN:         envOr("DB_DSN", ""),
		SessionStore:  envOr("SESSION_STORE", "sql"),
		RedisAddr:     envOr("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envInt("REDIS_DB", 0),
		AuthSecret:    envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),
		GatePassHash:  os.Getenv("GATE_PASS_HASH"),
		GatePassword:  envOr("GATE_PASSWORD", "aws2025"),
		CORSOrigins:   csvOr("CORS_ORIGINS", "http://localhost:3000"),
		DefaultTotal:  envInt("QUIZ_TOTAL", 150),
		DefaultSeed:   envInt("QUIZ_SEED", 42),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
