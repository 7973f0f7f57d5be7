package main

import (
	log "github.com/sirupsen/logrus"

	"math-prodigy/internal/config"
	"math-prodigy/internal/handle"
	"math-prodigy/internal/httpserver"
	"math-prodigy/internal/solver"
	"math-prodigy/internal/solver/gemini"
	"math-prodigy/internal/solver/gpt"
)

func main() {
	cfg := config.Load()
	config.SetupLogger(cfg)

	engines := &solver.Engines{
		OpenAI: gpt.New(cfg.OpenAIAPIKey, cfg.OpenAIModel),
		Gemini: gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel),
	}
	h := handle.New(engines)

	if err := httpserver.StartHTTP(":"+cfg.Port, h); err != nil {
		log.Fatal(err)
	}
}
