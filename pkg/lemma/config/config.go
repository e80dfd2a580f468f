// Package config loads and validates the service configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/andreystarchikov/lemmatizator/pkg/lemma/internalerr"
	"github.com/andreystarchikov/lemmatizator/pkg/lemma/langdetect"
)

// Language detection modes
const (
	ModeFixed     = "fixed"
	ModeHeuristic = "heuristic"
)

// Config is the top-level service configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Cache    CacheConfig    `yaml:"cache"`
	Morph    MorphConfig    `yaml:"morph"`
	Language LanguageConfig `yaml:"language"`
	Input    InputConfig    `yaml:"input"`
}

// ServerConfig configures the HTTP boundary.
type ServerConfig struct {
	Host       string `yaml:"host"`
	Port       int    `yaml:"port"`
	EnableCORS bool   `yaml:"enable_cors"`
}

// CacheConfig bounds the shared morphological cache.
type CacheConfig struct {
	Capacity int `yaml:"capacity"`
}

// MorphConfig locates the compiled dictionary and tunes the analyzer.
type MorphConfig struct {
	// DictPath points at the SQLite dictionary produced by cmd/dictgen.
	DictPath string `yaml:"dict_path"`
	// Guesser enables rule-based lemma guessing for out-of-dictionary
	// words. Off by default: unknown words are skipped.
	Guesser bool `yaml:"guesser"`
}

// LanguageConfig selects the language detection strategy.
type LanguageConfig struct {
	Mode string `yaml:"mode"` // "fixed" or "heuristic"
	Tag  string `yaml:"tag"`  // tag returned in fixed mode
}

// InputConfig tunes request text preparation.
type InputConfig struct {
	StripHTML bool `yaml:"strip_html"`
}

// Default returns the configuration used when no file is given: serve on
// :8000 with CORS open, a 20k-entry cache, a fixed Russian language tag and
// no guessing.
func Default() Config {
	return Config{
		Server:   ServerConfig{Host: "", Port: 8000, EnableCORS: true},
		Cache:    CacheConfig{Capacity: 20000},
		Morph:    MorphConfig{DictPath: "data/dict.db"},
		Language: LanguageConfig{Mode: ModeFixed, Tag: string(langdetect.Russian)},
	}
}

// Load reads a YAML config file over the defaults, so absent fields keep
// their default values, then validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges and cross-field constraints.
func (c Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server port %d out of range", internalerr.ErrInvalidConfig, c.Server.Port)
	}
	if c.Cache.Capacity < 1 {
		return fmt.Errorf("%w: cache capacity must be positive", internalerr.ErrInvalidConfig)
	}
	if c.Morph.DictPath == "" {
		return fmt.Errorf("%w: morph dict_path is required", internalerr.ErrInvalidConfig)
	}

	switch c.Language.Mode {
	case ModeFixed:
		if !langdetect.Valid(langdetect.Tag(c.Language.Tag)) {
			return fmt.Errorf("%w: unknown language tag %q", internalerr.ErrInvalidConfig, c.Language.Tag)
		}
	case ModeHeuristic:
	default:
		return fmt.Errorf("%w: unknown language mode %q", internalerr.ErrInvalidConfig, c.Language.Mode)
	}

	return nil
}

// Detector constructs the language detection strategy the config selects.
// Call Validate first; an unknown mode falls back to the fixed default.
func (c LanguageConfig) Detector() langdetect.Detector {
	if c.Mode == ModeHeuristic {
		return langdetect.Heuristic{}
	}
	return langdetect.Fixed(c.Tag)
}
