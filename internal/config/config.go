package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// Database
	SQLiteDBPath string

	// Insight generation
	GeminiModel    string
	InsightTimeout time.Duration

	// Administrative reset endpoint. Off by default; the DELETE /reset
	// handler refuses requests unless this is set.
	ResetEnabled bool

	// Archival sweep
	ArchiveSink string // log, amqp, sheets

	// AMQP (archive offload)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Google Sheets (archive offload)
	SheetsSpreadsheetID string
	SheetsSheetName     string
}

func Load() *Config {
	cfg := &Config{
		Port:         getEnv("PORT", "5000"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/fintrack.db"),

		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		InsightTimeout: getEnvDuration("INSIGHT_TIMEOUT", 30*time.Second),

		ResetEnabled: getEnvBool("RESET_ENABLED", false),

		ArchiveSink: getEnv("ARCHIVE_SINK", "log"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "fintrack"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "archive_transactions"),

		SheetsSpreadsheetID: getEnv("GOOGLE_SPREADSHEET_ID", ""),
		SheetsSheetName:     getEnv("GOOGLE_SHEET_NAME", "Archive"),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate port
	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	// Validate SQLite configuration
	if c.SQLiteDBPath == "" {
		errors = append(errors, "SQLite database path cannot be empty")
	} else {
		dir := filepath.Dir(c.SQLiteDBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
				}
			}
		}
	}

	if c.GeminiModel == "" {
		errors = append(errors, "Gemini model name cannot be empty")
	}

	if c.InsightTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid insight timeout %v: must be at least 1 second", c.InsightTimeout))
	} else if c.InsightTimeout > 5*time.Minute {
		errors = append(errors, fmt.Sprintf("invalid insight timeout %v: must be at most 5 minutes", c.InsightTimeout))
	}

	// Validate archive sink
	validSinks := []string{"log", "amqp", "sheets"}
	isValidSink := false
	for _, sink := range validSinks {
		if c.ArchiveSink == sink {
			isValidSink = true
			break
		}
	}
	if !isValidSink {
		errors = append(errors, fmt.Sprintf("invalid archive sink '%s': must be one of %v", c.ArchiveSink, validSinks))
	}

	// Validate AMQP configuration when the amqp sink is selected
	if c.ArchiveSink == "amqp" {
		if c.AMQPURL == "" {
			errors = append(errors, "AMQP URL is required when using the amqp archive sink")
		}
	}
	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	// Validate Google Sheets configuration when the sheets sink is selected
	if c.ArchiveSink == "sheets" {
		if c.SheetsSpreadsheetID == "" {
			errors = append(errors, "Google Spreadsheet ID is required when using the sheets archive sink")
		}
		if c.SheetsSheetName == "" {
			errors = append(errors, "Google Sheet name is required when using the sheets archive sink")
		}
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
