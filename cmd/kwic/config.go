package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/kwic/index"
	"github.com/npillmayer/kwic/scanner"
	"github.com/npillmayer/kwic/scanner/lexmach"
	"github.com/pelletier/go-toml/v2"
)

// Tokenizer names for configuration value 'tokenizer'.
const (
	wordTokenizer = "word"
	lexTokenizer  = "lexmachine"
)

// Config holds the settings of the command, read from a TOML file.
type Config struct {
	Trace     string `toml:"trace"`
	Tokenizer string `toml:"tokenizer"`
	MinLength int    `toml:"min_length"`
	Keywords  bool   `toml:"keywords"`
	Prompt    string `toml:"prompt"`
}

func defaultConfig() Config {
	return Config{
		Trace:     "Error",
		Tokenizer: wordTokenizer,
		Prompt:    "kwic> ",
	}
}

// loadConfig reads a configuration file. Values missing from the file keep
// their defaults. An empty path yields the default configuration.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("cannot read configuration: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot parse configuration %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch strings.ToLower(c.Tokenizer) {
	case wordTokenizer, lexTokenizer:
	default:
		return fmt.Errorf("unknown tokenizer %q", c.Tokenizer)
	}
	if c.MinLength < 0 {
		return errors.New("min_length must not be negative")
	}
	return nil
}

// tokenizerFactory returns the tokenizer for input lines, as configured.
func (c Config) tokenizerFactory() (index.TokenizerFactory, error) {
	switch strings.ToLower(c.Tokenizer) {
	case "", wordTokenizer:
		return func(line string) scanner.Tokenizer {
			return scanner.Words("line", strings.NewReader(line), scanner.SkipShortWords(c.MinLength))
		}, nil
	case lexTokenizer:
		LM, err := lexmach.NewLMAdapter()
		if err != nil {
			return nil, err
		}
		return func(line string) scanner.Tokenizer {
			return LM.Tokenizer(line)
		}, nil
	}
	return nil, fmt.Errorf("unknown tokenizer %q", c.Tokenizer)
}

// indexOptions translates the configuration into options for the generator.
func (c Config) indexOptions() ([]index.Option, error) {
	f, err := c.tokenizerFactory()
	if err != nil {
		return nil, err
	}
	return []index.Option{
		index.WithTokenizer(f),
		index.WithMinWordLength(c.MinLength),
	}, nil
}
