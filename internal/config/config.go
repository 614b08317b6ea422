package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Redis    Redis  `yaml:"redis"`
	Search   Search `yaml:"search"`
	Match    Match  `yaml:"match"`
	Render   Render `yaml:"render"`
}

type Redis struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
	// SolutionTTL - how long solved positions stay cached, 0 keeps them forever.
	SolutionTTL time.Duration `yaml:"solution-ttl" env:"REDIS_SOLUTION_TTL" env-default:"0s"`
}

type Search struct {
	MaxDepth  int           `yaml:"max-depth" env:"SEARCH_MAX_DEPTH" env-default:"0"`
	AlphaBeta bool          `yaml:"alpha-beta" env:"SEARCH_ALPHA_BETA"`
	Parallel  bool          `yaml:"parallel" env:"SEARCH_PARALLEL"`
	Timeout   time.Duration `yaml:"timeout" env:"SEARCH_TIMEOUT" env-default:"5s"`
}

type Match struct {
	First  Seat `yaml:"first"`
	Second Seat `yaml:"second"`
}

// Seat - a side of the match, played by the engine unless Human is set.
type Seat struct {
	Name  string `yaml:"name"`
	Human bool   `yaml:"human"`
}

// Render - NO_COLOR itself is honoured by the terminal profile detection, any non-empty value disables colour.
type Render struct {
	NoColor bool `yaml:"no-color" env:"RENDER_NO_COLOR"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
