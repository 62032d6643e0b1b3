package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile   string  `yaml:"log-file" env:"LOG_FILE" env-default:""`
	Game      Game    `yaml:"game"`
	Redis     Redis   `yaml:"redis"`
	Console   Console `yaml:"console"`
	SessionID string  `yaml:"session-id" env:"SESSION_ID" env-default:""`
}

type Game struct {
	Mode   string `yaml:"mode" env:"GAME_MODE" env-default:"ai"`
	Level  string `yaml:"level" env:"GAME_LEVEL" env-default:"minimax"`
	AISide string `yaml:"ai-side" env:"GAME_AI_SIDE" env-default:"O"`
}

type Redis struct {
	Enabled    bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host       string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port       string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	SessionTTL time.Duration `yaml:"session-ttl" env-default:"24h"`
}

// Console - ui is "screen" (full screen, mouse and keys) or "line" (text lines).
// Boolean options default to false, so an explicit false in the file is kept.
type Console struct {
	UI         string `yaml:"ui" env:"CONSOLE_UI" env-default:"screen"`
	KeepScreen bool   `yaml:"keep-screen" env:"CONSOLE_KEEP_SCREEN"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
