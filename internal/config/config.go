package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/kalah-backend/internal/kalah"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Redis      Redis  `yaml:"redis"`
	Kalah      Kalah  `yaml:"kalah"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// Kalah holds the board every new game is created with. Zero is a valid stone count,
// so its defaults are seeded in Load rather than through env-default.
type Kalah struct {
	Pits   int `yaml:"pits" env:"KALAH_PITS"`
	Stones int `yaml:"stones" env:"KALAH_STONES"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the config file, environment variables override its values.
func Load(path string) (*Config, error) {
	config := &Config{
		Kalah: Kalah{
			Pits:   kalah.DefaultPits,
			Stones: kalah.DefaultStones,
		},
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if _, err := config.Kalah.Configuration(); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// Configuration - the validated board configuration.
func (that *Kalah) Configuration() (kalah.Configuration, error) {
	conf, err := kalah.NewConfiguration(that.Pits, that.Stones)
	if err != nil {
		return kalah.Configuration{}, fmt.Errorf("invalid kalah section: %w", err)
	}

	return conf, nil
}
