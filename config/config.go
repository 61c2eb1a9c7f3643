package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up inside the scanned directory. The file is
// optional; without it every value below stays at its default.
const ConfigFileName = "iconmill.yaml"

type Config struct {
	Colors struct {
		Default string `yaml:"default" mapstructure:"default"`
		Active  string `yaml:"active" mapstructure:"active"`
	} `yaml:"colors" mapstructure:"colors"`
	Size         int    `yaml:"size" mapstructure:"size"`
	ActiveSuffix string `yaml:"active_suffix" mapstructure:"active_suffix"`
	SourceExt    string `yaml:"source_ext" mapstructure:"source_ext"`
	RasterExt    string `yaml:"raster_ext" mapstructure:"raster_ext"`
	Renderer     string `yaml:"renderer" mapstructure:"renderer"`
}

// Default returns the built-in settings: the two palette colors, a 256px
// square output, and automatic renderer selection.
func Default() Config {
	var c Config
	c.Colors.Default = "#d3c6aa"
	c.Colors.Active = "#a7c080"
	c.Size = 256
	c.ActiveSuffix = "-active"
	c.SourceExt = ".svg"
	c.RasterExt = ".png"
	c.Renderer = "auto"
	return c
}

// Load reads iconmill.yaml from dir if one exists and overlays it on the
// defaults. A missing file is not an error.
func Load(dir string) (Config, error) {
	c := Default()

	v := viper.New()
	v.SetConfigFile(filepath.Join(dir, ConfigFileName))
	v.SetConfigType("yaml")

	v.SetDefault("colors.default", c.Colors.Default)
	v.SetDefault("colors.active", c.Colors.Active)
	v.SetDefault("size", c.Size)
	v.SetDefault("active_suffix", c.ActiveSuffix)
	v.SetDefault("source_ext", c.SourceExt)
	v.SetDefault("raster_ext", c.RasterExt)
	v.SetDefault("renderer", c.Renderer)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return c, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

// Write marshals cfg to iconmill.yaml inside dir, overwriting any
// existing file.
func Write(dir string, cfg Config) error {
	d, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, ConfigFileName), d, 0644)
}
