package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Candidate names one model in the ordered fallback list.
type Candidate struct {
	Provider string `yaml:"provider"` // "router" or "gemini"
	Model    string `yaml:"model"`
}

// Config carries everything the invocation layer needs. It is built once
// at startup and passed in explicitly; nothing reads the environment after
// construction.
type Config struct {
	Token       string      `yaml:"-"` // HF_TOKEN; absence is a valid state
	GeminiKey   string      `yaml:"-"` // GEMINI_API_KEY, only used by gemini candidates
	BaseURL     string      `yaml:"base_url"`
	MaxTokens   int         `yaml:"max_tokens"`
	Temperature float32     `yaml:"temperature"`
	Candidates  []Candidate `yaml:"candidates"`
}

// Default returns the built-in candidate list with credentials read from
// the environment. This is the only place the process environment is
// consulted.
func Default() Config {
	return Config{
		Token:       os.Getenv("HF_TOKEN"),
		GeminiKey:   os.Getenv("GEMINI_API_KEY"),
		MaxTokens:   1024,
		Temperature: 0.7,
		Candidates: []Candidate{
			{Provider: "router", Model: "HuggingFaceH4/zephyr-7b-beta"},
			{Provider: "router", Model: "mistralai/Mistral-7B-Instruct-v0.3"},
			{Provider: "router", Model: "Qwen/Qwen2.5-72B-Instruct"},
		},
	}
}

// Load overlays a YAML file onto the defaults. Fields absent from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1024
	}
	if len(cfg.Candidates) == 0 {
		cfg.Candidates = Default().Candidates
	}
	return cfg, nil
}
