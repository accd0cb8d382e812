package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrMissingTool marks a required external binary that could not be found
var ErrMissingTool = errors.New("required external tool not found")

const (
	ProviderDeepSeek = "deepseek"
	ProviderOpenAI   = "openai"
	ProviderGemini   = "gemini"
	ProviderNone     = "none"
)

type Config struct {
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Authoring   AuthoringConfig   `yaml:"authoring"`
	Templates   TemplatesConfig   `yaml:"templates"`
	Paths       PathsConfig       `yaml:"paths"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Batch       BatchConfig       `yaml:"batch"`

	// Credentials are read from the environment only, never from YAML
	Credentials Credentials `yaml:"-"`
}

type WhisperConfig struct {
	ModelPath      string `yaml:"model_path"`
	ModelName      string `yaml:"model_name"`
	BinaryPath     string `yaml:"binary_path"`
	Language       string `yaml:"language"`
	Prompt         string `yaml:"prompt"`
	Threads        int    `yaml:"threads"`
	WordTimestamps bool   `yaml:"word_timestamps"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ProbePath  string `yaml:"probe_path"`
	SampleRate int    `yaml:"sample_rate"`
}

type AuthoringConfig struct {
	Provider string `yaml:"provider"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
}

// TemplatesConfig points at optional template overrides; empty uses the built-in ones
type TemplatesConfig struct {
	Prompt   string `yaml:"prompt"`
	Document string `yaml:"document"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

type OutputConfig struct {
	KeepIntermediates bool `yaml:"keep_intermediates"`
	Docx              bool `yaml:"docx"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type BatchConfig struct {
	Extensions []string `yaml:"extensions"`
}

// Credentials holds API keys resolved once at startup
type Credentials struct {
	DeepSeekKey string
	OpenAIKey   string
	GeminiKeys  []string
}

// Default returns a Config with every default filled in
func Default() *Config {
	cfg := &Config{}
	// Validate only errors on values that defaults always satisfy.
	_ = cfg.Validate()
	return cfg
}

// Load reads the YAML file at path. A missing file yields defaults when
// allowMissing is set, which is how the CLI treats its default config path.
func Load(path string, allowMissing bool) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case allowMissing && errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// LoadEnv loads .env files and resolves credentials. Missing files are
// skipped; a file that exists but cannot be parsed is an error.
func (c *Config) LoadEnv(files ...string) error {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("load env file %s: %w", f, err)
		}
	}

	c.Credentials = Credentials{
		DeepSeekKey: strings.TrimSpace(os.Getenv("DEEPSEEK_API_KEY")),
		OpenAIKey:   strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		GeminiKeys:  splitKeys(os.Getenv("GEMINI_API_KEYS")),
	}
	if len(c.Credentials.GeminiKeys) == 0 {
		c.Credentials.GeminiKeys = splitKeys(os.Getenv("GEMINI_API_KEY"))
	}
	return nil
}

func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func (c *Config) Validate() error {
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.ModelPath == "" {
		c.Whisper.ModelPath = "models/ggml-base.bin"
	}
	if c.Whisper.ModelName == "" {
		c.Whisper.ModelName = "base"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Whisper.Threads < 0 {
		return fmt.Errorf("whisper.threads must be positive")
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.ProbePath == "" {
		c.FFmpeg.ProbePath = "ffprobe"
	}
	if c.FFmpeg.SampleRate == 0 {
		c.FFmpeg.SampleRate = 16000
	}
	if c.FFmpeg.SampleRate < 0 {
		return fmt.Errorf("ffmpeg.sample_rate must be positive")
	}

	c.Authoring.Provider = strings.ToLower(c.Authoring.Provider)
	switch c.Authoring.Provider {
	case "":
		c.Authoring.Provider = ProviderDeepSeek
	case ProviderDeepSeek, ProviderOpenAI, ProviderGemini, ProviderNone:
	default:
		return fmt.Errorf("authoring.provider %q is not one of deepseek, openai, gemini, none", c.Authoring.Provider)
	}
	if c.Authoring.Model == "" {
		c.Authoring.Model = DefaultModel(c.Authoring.Provider)
	}

	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "output"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 1
	}
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must be positive")
	}
	if len(c.Batch.Extensions) == 0 {
		c.Batch.Extensions = []string{"mp4", "avi", "mkv", "mov"}
	}

	return nil
}

// DefaultModel returns the authoring model used when none is configured
func DefaultModel(provider string) string {
	switch provider {
	case ProviderOpenAI:
		return "gpt-4o-mini"
	case ProviderGemini:
		return "gemini-2.5-flash"
	default:
		return "deepseek-reasoner"
	}
}
