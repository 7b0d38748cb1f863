package config

import "time"

type Config struct {
	Server HTTPServerConfig `json:"server"`
	LLM    LLMConfig        `json:"llm"`
}

type HTTPServerConfig struct {
	Host         string        `json:"host" default:"0.0.0.0"`
	Port         int           `json:"port" default:"5000"`
	ReadTimeout  time.Duration `json:"read_timeout" default:"120s"`
	WriteTimeout time.Duration `json:"write_timeout" default:"120s"`
}

type LLMConfig struct {
	APIKey      string        `json:"api_key"`
	BaseURL     string        `json:"base_url" default:"https://api.openai.com/v1/chat/completions"`
	Model       string        `json:"model" default:"gpt-4"`
	Temperature float64       `json:"temperature" default:"0.85"`
	MaxTokens   int           `json:"max_tokens" default:"2500"`
	Timeout     time.Duration `json:"timeout" default:"120s"`
}
