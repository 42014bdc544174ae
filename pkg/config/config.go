package config

import (
	"log"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	AppEnv       string
	IsStaging    bool
	IsProduction bool

	JWTSecret string
	Port      string

	// demo principal: the only credential pair that can log in
	AdminUsername string
	AdminPassword string

	// token/session tunables
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	SweepInterval   time.Duration
)

// loadAppEnv: do not load .env file in production; everything must come
// from the host environment there.
func loadAppEnv() {
	AppEnv = os.Getenv("APP_ENV")

	if AppEnv == "production" {
		return
	}

	// non-production: .env is optional, host env vars alone are fine
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[config] skipping .env: %v", err)
	}
}

func init() {
	loadAppEnv()

	// re-read APP_ENV after the .env overlay
	AppEnv = os.Getenv("APP_ENV")
	if AppEnv == "" {
		AppEnv = "staging"
	}

	if !slices.Contains([]string{"staging", "production"}, AppEnv) {
		log.Fatal("environment variable APP_ENV must be 'staging' or 'production'")
	}

	IsStaging = AppEnv == "staging"
	IsProduction = AppEnv == "production"

	JWTSecret = os.Getenv("JWT_SECRET_KEY")
	Port = os.Getenv("PORT")
	if Port == "" {
		Port = "5000"
	}

	AdminUsername = envOr("ADMIN_USERNAME", "admin")
	AdminPassword = envOr("ADMIN_PASSWORD", "Admin@123")

	AccessTokenTTL = time.Duration(atoiOr(os.Getenv("ACCESS_TOKEN_TTL_MINUTES"), 15)) * time.Minute
	RefreshTokenTTL = time.Duration(atoiOr(os.Getenv("REFRESH_TOKEN_TTL_DAYS"), 7)) * 24 * time.Hour
	SweepInterval = time.Duration(atoiOr(os.Getenv("SESSION_SWEEP_INTERVAL_SECONDS"), 300)) * time.Second

	// production without a real secret is a misconfiguration -> refuse to start
	if IsProduction && JWTSecret == "" {
		log.Fatal("JWT_SECRET_KEY must be set in production")
	}
	if JWTSecret == "" {
		JWTSecret = "dev-secret-change-me"
		log.Printf("[config] JWT_SECRET_KEY not set, using insecure dev secret")
	}

	log.Printf("[config] AppEnv=%s IsStaging=%v IsProduction=%v", AppEnv, IsStaging, IsProduction)
	log.Printf("[config] accessTTL=%s refreshTTL=%s sweepInterval=%s",
		AccessTokenTTL, RefreshTokenTTL, SweepInterval)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}
