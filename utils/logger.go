package utils

import (
	"log"
	"os"
)

// LoggerConfig controls how the process logger is built.
type LoggerConfig struct {
	// Output stream (os.Stdout, a file, etc.)
	Output *os.File
}

// InitLogger builds the process logger.
func InitLogger(config ...LoggerConfig) *log.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	return log.New(cfg.Output, "[CHECKmate] ", log.LstdFlags|log.LUTC)
}
