// Package config provides configuration loading and structs for the Uttar server.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug     bool            `yaml:"debug"`
	Server    ServerConfig    `yaml:"server"`
	Documents DocumentsConfig `yaml:"documents"`
	Chunk     ChunkConfig     `yaml:"chunk"`
	Retrieval RetrievalConfig `yaml:"retrieval"`
	AI        AIConfig        `yaml:"ai"`
	OCR       OCRConfig       `yaml:"ocr"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DocumentsConfig holds the source document directory.
type DocumentsConfig struct {
	Dir string `yaml:"dir"`
}

// ChunkConfig holds text splitting settings (sizes in runes).
type ChunkConfig struct {
	Size    int `yaml:"size"`
	Overlap int `yaml:"overlap"`
}

// RetrievalConfig holds retrieval settings for question answering.
type RetrievalConfig struct {
	TopK int `yaml:"top_k"`
}

// AIConfig holds the external embedding and completion service settings.
// APIKey is never read from YAML; it comes from the OPENAI_API_KEY
// environment variable so credentials stay out of config files.
type AIConfig struct {
	EmbeddingModel      string `yaml:"embedding_model"`
	EmbeddingDimensions int    `yaml:"embedding_dimensions"`
	CompletionModel     string `yaml:"completion_model"`
	APIKey              string `yaml:"-"`
}

// OCRConfig holds external OCR tool settings for scanned PDFs.
// Empty paths mean "resolve from PATH at startup".
type OCRConfig struct {
	TesseractPath string `yaml:"tesseract_path"`
	PdftoppmPath  string `yaml:"pdftoppm_path"`
	Language      string `yaml:"language"`
}

// Load reads and parses the config file at path, applies defaults, expands
// the documents directory relative to the config file, and picks up the API
// credential from the environment.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	cfg.Documents.Dir = expandPath(cfg.Documents.Dir, configDir)
	cfg.AI.APIKey = os.Getenv("OPENAI_API_KEY")

	return &cfg, nil
}

// Default returns a config with all defaults applied and the documents
// directory resolved relative to the current working directory. Used when
// no config file is present.
func Default() *Config {
	var cfg Config
	ApplyDefaults(&cfg)
	if cwd, err := os.Getwd(); err == nil {
		cfg.Documents.Dir = expandPath(cfg.Documents.Dir, cwd)
	}
	cfg.AI.APIKey = os.Getenv("OPENAI_API_KEY")
	return &cfg
}

// Validate checks the startup-fatal conditions: a present API credential
// and a configured documents directory.
func (c *Config) Validate() error {
	if c.AI.APIKey == "" {
		return fmt.Errorf("OpenAI API key is missing: set OPENAI_API_KEY in the environment or a .env file")
	}
	if c.Documents.Dir == "" {
		return fmt.Errorf("documents directory is not configured")
	}
	return nil
}

// expandPath converts a path to absolute. Paths starting with "./" are relative
// to baseDir; other relative paths are relative to the home directory.
func expandPath(path string, baseDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(baseDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
