package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/remsodo/internal/llm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"

	envPrefix = "REMSODO"
)

type Config struct {
	DataDir string `validate:"required"`
	DBPath  string `validate:"required"`

	Store          string `validate:"oneof=sqlite redis"`
	RedisAddr      string `validate:"required_if=Store redis"`
	RedisPassword  string
	RedisDB        int `validate:"gte=0"`
	RedisNamespace string

	SessionSecret string        `validate:"required"`
	SessionTTL    time.Duration `validate:"gt=0"`

	LogLevel slog.Level

	SendGridAPIKey string
	MailFrom       string `validate:"omitempty,email"`

	LLM llm.LLMConfig
}

// Load reads an optional .env file, then REMSODO_* environment variables.
// envFile may be empty to use ./.env; a missing file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("checking %s: %w", envFile, err)
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := llm.DefaultConfig()
	v.SetDefault("store", StoreSQLite)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.namespace", "remsodo:")
	v.SetDefault("session.ttl", 24*time.Hour)
	v.SetDefault("log.level", "warn")
	v.SetDefault("mail.from", "noreply@remsodo.academy")
	v.SetDefault("llm.endpoint", defaults.Endpoint)
	v.SetDefault("llm.model", defaults.Model)
	v.SetDefault("llm.timeout_ms", defaults.TimeoutMs)
	v.SetDefault("llm.max_retries", defaults.MaxRetries)
	v.SetDefault("llm.log_calls", false)

	// The model key is also accepted under the names the hosted API documents.
	_ = v.BindEnv("llm.api_key", envPrefix+"_API_KEY", "GEMINI_API_KEY", "API_KEY")
	return v
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	dataDir := v.GetString("data_dir")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".remsodo")
	}
	dbPath := v.GetString("db")
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "remsodo.db")
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("log.level"))); err != nil {
		return nil, fmt.Errorf("invalid REMSODO_LOG_LEVEL: %w", err)
	}

	cfg := &Config{
		DataDir:        dataDir,
		DBPath:         dbPath,
		Store:          strings.ToLower(v.GetString("store")),
		RedisAddr:      v.GetString("redis.addr"),
		RedisPassword:  v.GetString("redis.password"),
		RedisDB:        v.GetInt("redis.db"),
		RedisNamespace: v.GetString("redis.namespace"),
		SessionSecret:  v.GetString("session.secret"),
		SessionTTL:     v.GetDuration("session.ttl"),
		LogLevel:       level,
		SendGridAPIKey: v.GetString("sendgrid.api_key"),
		MailFrom:       v.GetString("mail.from"),
		LLM:            llmConfig(v),
	}

	if cfg.SessionSecret == "" {
		secret, err := loadOrCreateSecret(filepath.Join(dataDir, "session.key"))
		if err != nil {
			return nil, err
		}
		cfg.SessionSecret = secret
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func llmConfig(v *viper.Viper) llm.LLMConfig {
	cfg := llm.DefaultConfig()
	cfg.Endpoint = v.GetString("llm.endpoint")
	cfg.Model = v.GetString("llm.model")
	cfg.TimeoutMs = v.GetInt("llm.timeout_ms")
	cfg.MaxRetries = v.GetInt("llm.max_retries")
	cfg.LogCalls = v.GetBool("llm.log_calls")
	cfg.APIKey = v.GetString("llm.api_key")
	cfg.Enabled = cfg.APIKey != ""
	for _, task := range llm.AllTasks {
		cfg.SetTaskTimeout(task, v.GetInt("llm."+string(task)+"_timeout_ms"))
	}
	return cfg
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c *Config) Validate() error {
	err := validate.Struct(c)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fe := verrs[0]
		return fmt.Errorf("invalid configuration: %s failed %q", fe.Field(), fe.Tag())
	}
	return err
}

// loadOrCreateSecret keeps a per-installation signing key next to the
// database so sessions survive restarts without any setup.
func loadOrCreateSecret(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err == nil && len(strings.TrimSpace(string(data))) > 0 {
		return strings.TrimSpace(string(data)), nil
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("reading session key: %w", err)
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating session key: %w", err)
	}
	secret := hex.EncodeToString(buf)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("creating data directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(secret+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("writing session key: %w", err)
	}
	return secret, nil
}
