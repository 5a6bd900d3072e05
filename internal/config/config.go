package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	nmea "github.com/tristanseifert/libnmea"
	"github.com/tristanseifert/libnmea/scan"
)

type Config struct {
	Input  InputConfig  `yaml:"input" toml:"input"`
	Output OutputConfig `yaml:"output" toml:"output"`
	UDP    UDPConfig    `yaml:"udp" toml:"udp"`
	PPS    PPSConfig    `yaml:"pps" toml:"pps"`
}

type InputConfig struct {
	// Source selects where sentences come from: "serial", "file" or
	// "stdin". Defaults to "serial".
	Source string `yaml:"source" toml:"source"`

	// Device is the serial device path. Empty means auto-detect.
	Device string `yaml:"device" toml:"device"`
	Baud   int    `yaml:"baud" toml:"baud"`

	// Path is the input file for Source=="file".
	Path string `yaml:"path" toml:"path"`

	// Checksum is the framing policy: "require", "verify" or "off".
	// Defaults to "require".
	Checksum string `yaml:"checksum" toml:"checksum"`
}

type OutputConfig struct {
	// Format is "text" or "json" (one object per line).
	Format string `yaml:"format" toml:"format"`

	// Only limits output to the named sentence types ("GGA", "VTG", ...).
	// Empty means everything.
	Only []string `yaml:"only" toml:"only"`
}

type UDPConfig struct {
	Enable bool   `yaml:"enable" toml:"enable"`
	Dest   string `yaml:"dest" toml:"dest"`
}

type PPSConfig struct {
	Enable bool `yaml:"enable" toml:"enable"`

	// Chip is the GPIO character device carrying the PPS line. Empty
	// means scan /dev/gpiochip*.
	Chip string `yaml:"chip" toml:"chip"`

	// Line is the GPIO line offset the receiver pulses once per second.
	Line int `yaml:"line" toml:"line"`
}

// Default is the configuration used when no file is given: serial input
// with device auto-detection, text output, no rebroadcast.
func Default() Config {
	return Config{
		Input:  InputConfig{Source: "serial", Baud: 9600, Checksum: "require"},
		Output: OutputConfig{Format: "text"},
	}
}

// Load reads a configuration file. The extension picks the format: .toml
// is TOML, everything else YAML.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	switch filepath.Ext(path) {
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Input.Source == "" {
		c.Input.Source = "serial"
	}
	switch c.Input.Source {
	case "serial", "file", "stdin":
	default:
		return fmt.Errorf("input.source must be one of serial, file or stdin")
	}
	if c.Input.Source == "file" && c.Input.Path == "" {
		return fmt.Errorf("input.path is required when input.source is file")
	}
	if c.Input.Baud == 0 {
		c.Input.Baud = 9600
	}
	if c.Input.Checksum == "" {
		c.Input.Checksum = "require"
	}
	if _, ok := scan.PolicyByName(c.Input.Checksum); !ok {
		return fmt.Errorf("input.checksum must be one of require, verify or off")
	}

	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if c.Output.Format != "text" && c.Output.Format != "json" {
		return fmt.Errorf("output.format must be text or json")
	}
	for _, name := range c.Output.Only {
		if nmea.TypeByName(name) == nmea.TypeUnknown {
			return fmt.Errorf("output.only: unknown sentence type %q", name)
		}
	}

	if c.UDP.Enable && c.UDP.Dest == "" {
		return fmt.Errorf("udp.dest is required when udp.enable is true")
	}
	if c.PPS.Enable && c.PPS.Line < 0 {
		return fmt.Errorf("pps.line must be >= 0")
	}
	return nil
}
