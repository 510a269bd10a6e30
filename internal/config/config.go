package config

// Provider names accepted in LLMConfig.Provider. The "ollama" provider is
// the OpenAI-compatible adapter pointed at a local Ollama endpoint.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// Provider selects the completion backend. Selection happens once at
	// application wiring time; the workflow never branches on it.
	Provider string `mapstructure:"provider" validate:"required,oneof=gemini openai ollama"`

	// Model is the model name passed to the provider.
	Model string `mapstructure:"model" validate:"required"`

	// APIKey authenticates against hosted providers. A local Ollama
	// endpoint needs none.
	APIKey string `mapstructure:"api_key" validate:"required_unless=Provider ollama"`

	// BaseURL overrides the provider endpoint for OpenAI-compatible
	// backends. Ignored by the Gemini provider.
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`

	// MaxRetries bounds provider-side retry of transient faults.
	MaxRetries int `mapstructure:"max_retries" validate:"gte=0"`

	// RetryDelaySeconds is the base delay for exponential backoff.
	RetryDelaySeconds int `mapstructure:"retry_delay_seconds" validate:"gte=0"`

	// Temperature and MaxTokens are passed through to the provider.
	// Zero MaxTokens means no limit.
	Temperature float32 `mapstructure:"temperature" validate:"gte=0,lte=2"`
	MaxTokens   int     `mapstructure:"max_tokens"  validate:"gte=0"`
}
