package bgslib

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/image/draw"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Mode       string `toml:"Mode" yaml:"mode"`
	Rotate     *bool  `toml:"Rotate" yaml:"rotate"`
	Color      string `toml:"Color" yaml:"color"`
	Persistent bool   `toml:"Persistent" yaml:"persistent"`
	Filter     string `toml:"Filter" yaml:"filter"`

	// X display to connect to, empty means $DISPLAY
	Display string   `toml:"Display" yaml:"display"`
	LogFile string   `toml:"LogFile" yaml:"log_file"`
	Paths   []string `toml:"-" yaml:"-"`

	mode   Mode
	scaler draw.Scaler
}

// LoadConfig reads defaults from a TOML or YAML file, picked by extension.
// An empty path gives the built-in defaults.
func LoadConfig(path string) (*Config, error) {
	c := &Config{}
	if path == "" {
		return c, nil
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf(
			"Error calling os.Stat on config file [%s]: %s", path, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("Config file [%s] is not a regular file", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err = yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("Error parsing config file [%s]: %w", path, err)
		}
	default:
		if _, err = toml.DecodeFile(path, c); err != nil {
			return nil, fmt.Errorf("Error parsing config file [%s]: %w", path, err)
		}
	}

	return c, nil
}

// Validate fills in defaults and must be called before the Config is used
func (c *Config) Validate() error {
	var err error

	c.mode, err = ParseMode(c.Mode)
	if err != nil {
		return err
	}
	c.Mode = c.mode.String()

	c.scaler, err = ParseFilter(c.Filter)
	if err != nil {
		return err
	}

	if c.Rotate == nil {
		rotate := true
		c.Rotate = &rotate
	}

	if c.Color == "" {
		c.Color = DefaultColor
	}

	if len(c.Paths) == 0 {
		return ErrNoImages
	}

	return nil
}

func (c *Config) PlacementMode() Mode {
	return c.mode
}

func (c *Config) compositeOptions() CompositeOptions {
	return CompositeOptions{
		Mode:   c.mode,
		Rotate: c.Rotate == nil || *c.Rotate,
		Scaler: c.scaler,
	}
}
