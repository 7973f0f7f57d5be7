// Package config loads service configuration from the environment.
package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Port string

	// Default credentials are optional; the per-request key wins. The
	// service runs fine with both empty as long as users supply their own.
	OpenAIAPIKey string
	OpenAIModel  string
	GeminiAPIKey string
	GeminiModel  string

	LoggerLevel  string
	LoggerFormat string
}

func Load() *Config {
	v := viper.New()

	v.SetDefault("PORT", "8000")
	v.SetDefault("OPENAI_MODEL", "gpt-4.1-mini")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "text")

	v.AutomaticEnv()

	return &Config{
		Port: v.GetString("PORT"),

		OpenAIAPIKey: v.GetString("OPENAI_API_KEY"),
		OpenAIModel:  v.GetString("OPENAI_MODEL"),
		GeminiAPIKey: v.GetString("GEMINI_API_KEY"),
		GeminiModel:  v.GetString("GEMINI_MODEL"),

		LoggerLevel:  v.GetString("LOGGER_LEVEL"),
		LoggerFormat: v.GetString("LOGGER_FORMAT"),
	}
}
