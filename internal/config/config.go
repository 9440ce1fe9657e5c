package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Engine EngineConfig `mapstructure:"engine"`
	Render RenderConfig `mapstructure:"render"`
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
}

type EngineConfig struct {
	Path     string `mapstructure:"path"`
	Threads  int    `mapstructure:"threads"`
	Hash     int    `mapstructure:"hash"`
	Depth    int    `mapstructure:"depth"`
	MoveTime int    `mapstructure:"movetime"`
}

type RenderConfig struct {
	Theme      string `mapstructure:"theme"`
	SquareSize int    `mapstructure:"square_size"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

const envPrefix = "FENNEC"

func defaults(v *viper.Viper) {
	v.SetDefault("engine.path", "")
	v.SetDefault("engine.threads", 1)
	v.SetDefault("engine.hash", 16)
	v.SetDefault("engine.depth", 18)
	v.SetDefault("engine.movetime", 0)
	v.SetDefault("render.theme", "classic")
	v.SetDefault("render.square_size", 45)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("log.level", "info")
}

// Setup reads the configuration file at cfgPath, if any, on top of the
// defaults. Environment variables such as FENNEC_ENGINE_PATH override both.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	defaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
