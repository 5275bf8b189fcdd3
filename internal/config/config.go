package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Engine EngineConfig
	Upload UploadConfig
	Chat   ChatConfig
	Report ReportConfig
	SMTP   SMTPConfig
	Otel   OtelConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type EngineConfig struct {
	AnalysisURL    string
	QAURL          string
	DeliveryURL    string
	TimeoutSeconds int
}

type UploadConfig struct {
	AcceptedType string
	MaxSizeMB    int
}

type ChatConfig struct {
	// EscalationThreshold: assistant replies below this confidence carry the
	// consult-a-professional warning.
	EscalationThreshold int

	// DefaultConfidence is applied when the QA engine omits a confidence.
	// Defaults to 100 (assume confident); override to a conservative value
	// to force escalation on unknown confidence.
	DefaultConfidence int
}

type ReportConfig struct {
	// Delivery selects how report emails go out: "http" (external delivery
	// engine) or "smtp" (direct via the mailer).
	Delivery string
}

type OtelConfig struct {
	// Enabled gates tracing entirely; disabled deployments pay nothing.
	Enabled     bool
	Endpoint    string
	ServiceName string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Engine: EngineConfig{
			AnalysisURL:    getEnv("ANALYSIS_ENGINE_URL", "http://localhost:5000"),
			QAURL:          getEnv("QA_ENGINE_URL", "http://localhost:5000"),
			DeliveryURL:    getEnv("DELIVERY_ENGINE_URL", "http://localhost:5000"),
			TimeoutSeconds: getEnvAsInt("ENGINE_TIMEOUT_SECONDS", 120),
		},
		Upload: UploadConfig{
			AcceptedType: getEnv("UPLOAD_ACCEPTED_TYPE", "application/pdf"),
			MaxSizeMB:    getEnvAsInt("UPLOAD_MAX_SIZE_MB", 10),
		},
		Chat: ChatConfig{
			EscalationThreshold: getEnvAsInt("CHAT_ESCALATION_THRESHOLD", 70),
			DefaultConfidence:   getEnvAsInt("CHAT_DEFAULT_CONFIDENCE", 100),
		},
		Report: ReportConfig{
			Delivery: getEnv("REPORT_DELIVERY", "http"),
		},
		Otel: OtelConfig{
			Enabled:     getEnv("OTEL_ENABLED", "false") == "true",
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "ai-legaldoc-backend"),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "LegalDoc Assistant"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
