package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// Config holds the process resources used by run.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// EnvFile is loaded into the environment before flags are parsed.
	// A missing file is ignored. Variables already set are kept.
	EnvFile string
}

// DefaultConfig returns a Config using the process's standard streams.
func DefaultConfig() Config {
	return Config{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		EnvFile: ".env",
	}
}

// fileSettings is the YAML configuration file layout. Flags and
// environment variables take precedence over it.
type fileSettings struct {
	Curve     string `yaml:"curve"`
	Cipher    string `yaml:"cipher"`
	Hash      string `yaml:"hash"`
	CacheSize int    `yaml:"cache-size"`
	KEMReuse  *bool  `yaml:"kem-reuse"`
	LogLevel  string `yaml:"loglevel"`
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func readSettings(path string) (*fileSettings, error) {
	settings := &fileSettings{}
	if path == "" {
		return settings, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(settings); err != nil {
		if errors.Is(err, io.EOF) {
			return settings, nil
		}
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return settings, nil
}

// stringSetting returns the flag value when the flag was set on the command
// line or through its environment variable, else the file value when
// present, else the flag default.
func stringSetting(c *cli.Context, name, fromFile string) string {
	if c.IsSet(name) || fromFile == "" {
		return c.String(name)
	}
	return fromFile
}
