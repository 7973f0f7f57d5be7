package config

import (
	log "github.com/sirupsen/logrus"
)

// SetupLogger applies the configured level and format to the global logger.
func SetupLogger(cfg *Config) {
	level, err := log.ParseLevel(cfg.LoggerLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.LoggerFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
