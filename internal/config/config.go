package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Slack    SlackConfig    `yaml:"slack"`
	LLM      LLMConfig      `yaml:"llm"`
	Ledger   LedgerConfig   `yaml:"ledger"`
	Actor    ActorConfig    `yaml:"actor"`
	Worker   WorkerConfig   `yaml:"worker"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// SlackConfig holds chat-platform credentials and outbound call policy.
type SlackConfig struct {
	SigningSecret     string        `yaml:"signing_secret"      env:"SLACK_SIGNING_SECRET"      env-required:"true"`
	BotToken          string        `yaml:"bot_token"           env:"SLACK_BOT_TOKEN"           env-required:"true"`
	APIURL            string        `yaml:"api_url"             env:"SLACK_API_URL"`
	RequestTimeout    time.Duration `yaml:"request_timeout"     env:"SLACK_REQUEST_TIMEOUT"     env-default:"10s"`
	MaxRetries        uint64        `yaml:"max_retries"         env:"SLACK_MAX_RETRIES"         env-default:"3"`
	RetryInitialDelay time.Duration `yaml:"retry_initial_delay" env:"SLACK_RETRY_INITIAL_DELAY" env-default:"500ms"`
	AckEmoji          string        `yaml:"ack_emoji"           env:"SLACK_ACK_EMOJI"           env-default:"white_check_mark"`
}

// LLMConfig holds settings for the intent-extraction model.
type LLMConfig struct {
	APIKey              string        `yaml:"api_key"              env:"LLM_API_KEY"              env-required:"true"`
	Model               string        `yaml:"model"                env:"LLM_MODEL"                env-default:"claude-haiku-4-5"`
	BaseURL             string        `yaml:"base_url"             env:"LLM_BASE_URL"`
	RequestTimeout      time.Duration `yaml:"request_timeout"      env:"LLM_REQUEST_TIMEOUT"      env-default:"30s"`
	MaxRetries          int           `yaml:"max_retries"          env:"LLM_MAX_RETRIES"          env-default:"3"`
	MaxTokens           int64         `yaml:"max_tokens"           env:"LLM_MAX_TOKENS"           env-default:"1024"`
	ConfidenceThreshold int           `yaml:"confidence_threshold" env:"LLM_CONFIDENCE_THRESHOLD" env-default:"70"`
}

// LedgerConfig holds event ledger maintenance settings.
type LedgerConfig struct {
	PendingTTL time.Duration `yaml:"pending_ttl" env:"LEDGER_PENDING_TTL" env-default:"72h"`
}

// ActorConfig holds actor directory refresh settings.
type ActorConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval" env:"ACTOR_REFRESH_INTERVAL" env-default:"24h"`
	DefaultTimezone string        `yaml:"default_timezone" env:"ACTOR_DEFAULT_TIMEZONE" env-default:"America/Los_Angeles"`
}

// WorkerConfig controls how webhook side effects are executed.
type WorkerConfig struct {
	Mode        string `yaml:"mode"        env:"WORKER_MODE"        env-default:"pool"`
	Concurrency int    `yaml:"concurrency" env:"WORKER_CONCURRENCY" env-default:"8"`
	QueueSize   int    `yaml:"queue_size"  env:"WORKER_QUEUE_SIZE"  env-default:"256"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Worker execution modes.
const (
	WorkerModePool   = "pool"
	WorkerModeInline = "inline"
)
