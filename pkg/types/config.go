package types

import "time"

// HTTPConfig holds shared HTTP settings for code that talks to the AI API.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "notescript/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// BackendKind identifies the generative AI backend.
type BackendKind string

const (
	BackendAnthropic BackendKind = "anthropic"
	BackendOpenAI    BackendKind = "openai"
)

// AIConfig holds shared settings for the generative AI API call.
type AIConfig struct {
	// Backend selects the API provider: anthropic or openai.
	Backend BackendKind `json:"backend" yaml:"backend"`

	// Model is the AI model identifier (e.g. "claude-sonnet-4-5-20250929").
	// Empty selects the backend default.
	Model string `json:"model,omitempty" yaml:"model,omitempty"`

	// APIKey is the authentication key for the AI API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxTokens caps the length of the model reply (default 4096).
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`
}

// GenerationConfig holds settings for one notes-to-script generation run.
type GenerationConfig struct {
	AIConfig `yaml:",inline"`

	HTTP HTTPConfig `json:"http" yaml:"http"`

	// OutputDir is the directory for generated scripts when no explicit
	// output path is given (default "output_scripts").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// ScriptType selects the flavor of generated code.
	ScriptType ScriptType `json:"script_type" yaml:"script_type"`
}

// HistoryConfig holds settings for the generation history ledger.
type HistoryConfig struct {
	// HistoryDir is the directory holding the ledger database
	// (default ".notescript").
	HistoryDir string `json:"history_dir" yaml:"history_dir"`

	// MaxResults is the default maximum number of listed runs (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
