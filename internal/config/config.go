package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/caballebrios/nightboard/internal/platform/logging"
)

// Config stores runtime configuration for the service. It is resolved once
// in main and passed explicitly; nothing below reads the environment.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string
	LogLevel           logging.Level
	SwaggerEnabled     bool

	// DatabaseURL selects the PostgreSQL backend when set; when empty, or
	// when the remote connection attempt fails, the embedded SQLite file at
	// SQLitePath is used.
	DatabaseURL       string
	SQLitePath        string
	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxIdleTime time.Duration

	SeedHistoryOnStart bool
	SummaryWorkers     int

	PprofEnabled bool
	PprofAddr    string

	UptraceEnabled     bool
	UptraceDSN         string
	UptraceLogsEnabled bool

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration

	BetterStackEnabled  bool
	BetterStackEndpoint string
	BetterStackToken    string
	BetterStackTimeout  time.Duration
	BetterStackMinLevel logging.Level
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	serviceName := strings.TrimSpace(getEnv("SERVICE_NAME", "nightboard"))
	serviceVersion := strings.TrimSpace(getEnv("SERVICE_VERSION", "dev"))
	httpAddr := strings.TrimSpace(getEnv("APP_HTTP_ADDR", ":8080"))

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	logLevel, err := logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_LOG_LEVEL: %w", err)
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}
	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	databaseURL := strings.TrimSpace(getEnv("DATABASE_URL", ""))
	sqlitePath := strings.TrimSpace(getEnv("SQLITE_PATH", filepath.Join(os.TempDir(), "caballebrios.db")))
	if sqlitePath == "" {
		return Config{}, fmt.Errorf("SQLITE_PATH must not be empty")
	}

	dbMaxOpenConns, err := getEnvAsInt("DB_MAX_OPEN_CONNS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_MAX_OPEN_CONNS: %w", err)
	}
	if dbMaxOpenConns < 1 {
		return Config{}, fmt.Errorf("DB_MAX_OPEN_CONNS must be >= 1")
	}
	dbMaxIdleConns, err := getEnvAsInt("DB_MAX_IDLE_CONNS", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_MAX_IDLE_CONNS: %w", err)
	}
	if dbMaxIdleConns < 0 {
		return Config{}, fmt.Errorf("DB_MAX_IDLE_CONNS must be >= 0")
	}
	dbConnMaxIdleTime, err := time.ParseDuration(getEnv("DB_CONN_MAX_IDLE_TIME", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_CONN_MAX_IDLE_TIME: %w", err)
	}
	if dbConnMaxIdleTime <= 0 {
		return Config{}, fmt.Errorf("DB_CONN_MAX_IDLE_TIME must be > 0")
	}

	seedHistoryOnStart, err := strconv.ParseBool(getEnv("SEED_HISTORY_ON_START", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SEED_HISTORY_ON_START: %w", err)
	}

	summaryWorkers, err := getEnvAsInt("SUMMARY_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse SUMMARY_WORKERS: %w", err)
	}
	if summaryWorkers < 1 {
		return Config{}, fmt.Errorf("SUMMARY_WORKERS must be >= 1")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeAppName := strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", serviceName))
	pyroscopeAuthToken := strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", ""))
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	betterStackEnabled, err := strconv.ParseBool(getEnv("BETTERSTACK_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BETTERSTACK_ENABLED: %w", err)
	}
	betterStackEndpoint := strings.TrimSpace(getEnv("BETTERSTACK_ENDPOINT", ""))
	if betterStackEnabled && betterStackEndpoint == "" {
		return Config{}, fmt.Errorf("BETTERSTACK_ENDPOINT is required when BETTERSTACK_ENABLED=true")
	}
	betterStackTimeout, err := time.ParseDuration(getEnv("BETTERSTACK_TIMEOUT", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BETTERSTACK_TIMEOUT: %w", err)
	}
	if betterStackTimeout <= 0 {
		return Config{}, fmt.Errorf("BETTERSTACK_TIMEOUT must be > 0")
	}
	betterStackMinLevel, err := logging.ParseLevel(getEnv("BETTERSTACK_MIN_LEVEL", "error"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BETTERSTACK_MIN_LEVEL: %w", err)
	}

	return Config{
		AppEnv:             appEnv,
		ServiceName:        serviceName,
		ServiceVersion:     serviceVersion,
		HTTPAddr:           httpAddr,
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           logLevel,
		SwaggerEnabled:     swaggerEnabled,

		DatabaseURL:       databaseURL,
		SQLitePath:        sqlitePath,
		DBMaxOpenConns:    dbMaxOpenConns,
		DBMaxIdleConns:    dbMaxIdleConns,
		DBConnMaxIdleTime: dbConnMaxIdleTime,

		SeedHistoryOnStart: seedHistoryOnStart,
		SummaryWorkers:     summaryWorkers,

		PprofEnabled: pprofEnabled,
		PprofAddr:    pprofAddr,

		UptraceEnabled:     uptraceEnabled,
		UptraceDSN:         uptraceDSN,
		UptraceLogsEnabled: uptraceLogsEnabled,

		PyroscopeEnabled:           pyroscopeEnabled,
		PyroscopeServerAddress:     pyroscopeServerAddress,
		PyroscopeAppName:           pyroscopeAppName,
		PyroscopeAuthToken:         pyroscopeAuthToken,
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:        pyroscopeUploadRate,

		BetterStackEnabled:  betterStackEnabled,
		BetterStackEndpoint: betterStackEndpoint,
		BetterStackToken:    strings.TrimSpace(getEnv("BETTERSTACK_TOKEN", "")),
		BetterStackTimeout:  betterStackTimeout,
		BetterStackMinLevel: betterStackMinLevel,
	}, nil
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(parts[1]), "\"'")
		}
	}

	return ""
}
