package config

import (
	"fmt"
	"time"
)

type Config struct {
	Env              string                  `env:"ENV,default=local"`
	Logger           LoggerConfig            `env:",prefix=LOGGER_"`
	Observability    ObservabilityHTTPConfig `env:",prefix=OBSERVABILITY_"`
	Tracing          TracingConfig           `env:",prefix=TRACING_"`
	ShutdownDuration time.Duration           `env:"SHUTDOWN_DURATION,default=30s"`
	Telegram         TelegramConfig          `env:",prefix=TELEGRAM_"`
	Reseller         ResellerConfig          `env:",prefix=RESELLER_"`
	Sessions         SessionsConfig          `env:",prefix=SESSIONS_"`
	Healthcheck      HealthcheckConfig       `env:",prefix=HEALTHCHECK_"`
}

type TelegramConfig struct {
	BotToken  string        `env:"BOT_TOKEN,required"`
	Timeout   time.Duration `env:"TIMEOUT,default=60s"`
	RateLimit struct {
		Burst int     `env:"BURST,default=1"`
		RPS   float64 `env:"RPS,default=30.0"`
	} `env:",prefix=RATE_LIMIT_"`
}

// ResellerConfig описывает доступ к API реселлера. Ключ и адрес обязательны:
// без них бот не запускается.
type ResellerConfig struct {
	APIKey  string        `env:"API_KEY,required"`
	APIURL  string        `env:"API_URL,required"`
	Timeout time.Duration `env:"TIMEOUT,default=30s"`
}

type SessionsConfig struct {
	TTL             time.Duration `env:"TTL,default=30m"`
	CleanupSchedule string        `env:"CLEANUP_SCHEDULE,default=@every 1m"`
}

type HealthcheckConfig struct {
	Schedule string `env:"SCHEDULE,default=@every 1m"`
}

type LoggerConfig struct {
	Level string `env:"LEVEL,default=debug"`
}

// TracingConfig выбирает экспортер спанов: none или stdout.
type TracingConfig struct {
	Exporter    string  `env:"EXPORTER,default=none"`
	SampleRatio float64 `env:"SAMPLE_RATIO,default=1.0"`
}

type ObservabilityHTTPConfig struct {
	Host         string        `env:"HOST,default=127.0.0.1"`
	Port         uint16        `env:"PORT,default=8383"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT,default=30s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT,default=30s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT,default=1m"`
}

func (a ObservabilityHTTPConfig) ADDR() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}
