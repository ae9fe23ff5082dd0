package config

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Parser struct {

	// KeySeparator separates the schedule key from its weekly opening hours.
	//
	// Example: " " for "shop-1 Mon-Fri 09:00-17:00"
	KeySeparator string `env:"KEY_SEPARATOR" env-default:" "`

	// CommentPrefix marks lines of a schedule file which are skipped.
	CommentPrefix string `env:"COMMENT_PREFIX" env-default:"#"`

	// UpdatesChanSize is a size of parsed updates channel
	UpdatesChanSize int `env:"UPDATES_CHAN_SIZE" env-default:"10"`
}

type Processor struct {

	// KeyPrefix is prepended to every schedule key before it is stored.
	//
	// Example: "opening-hours:" stores "shop-1" as "opening-hours:shop-1"
	KeyPrefix string `env:"SNAPSHOT_KEY_PREFIX" env-default:"opening-hours:"`

	// ShowSummary prints the added/removed minutes per key after processing.
	ShowSummary bool `env:"SHOW_SUMMARY" env-default:"true"`
}

type Store struct {

	// Backend is either "memory" or "redis".
	Backend string `env:"STORE_BACKEND" env-default:"memory"`

	RedisAddr     string `env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD" env-default:""`
	RedisDB       int    `env:"REDIS_DB" env-default:"0"`
}

type Logger struct {

	// Level is one of "debug", "info", "warn", "error".
	Level string `env:"LOG_LEVEL" env-default:"info"`

	// Env selects development (console friendly) or production output.
	Env string `env:"APP_ENV" env-default:"development"`
}

// LoadEnvFile loads variables from a .env file into the process environment,
// variables which are already set win.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}

	return godotenv.Load(path)
}

func NewParserConfig() (*Parser, error) {
	var cfg Parser
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func NewProcessorConfig() (*Processor, error) {
	var cfg Processor
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func NewStoreConfig() (*Store, error) {
	var cfg Store
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func NewLoggerConfig() (*Logger, error) {
	var cfg Logger
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
