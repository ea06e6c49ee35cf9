package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config tells the store where its database directory lives.
type Config interface {
	BasePath() string
}

// PathConfig returns a Config rooted at an explicit directory, bypassing
// viper. Used by the --db flag and by tests.
func PathConfig(path string) Config {
	return &fileConfig{Path: path}
}

// LoadConfig resolves the database directory from, in order: the HOIST_PATH
// environment variable, a .hoist config file (in HOIST_CONFIG_PATH, the
// working directory, or $HOME), and the built-in default ~/.hoist.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.hoist.db")
	viper.SetConfigName(".hoist") // .yaml is implicit
	viper.SetEnvPrefix("HOIST")
	viper.AutomaticEnv()

	if override := os.Getenv("HOIST_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
