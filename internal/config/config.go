package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// Backend selection
	DataBackend string

	// Google Sheets
	GoogleSpreadsheetID   string
	GoogleCredentialsJSON string
	GoogleCredentialsFile string

	// Worksheet names
	ProjectsSheet  string
	RevenuesSheet  string
	ExpensesSheet  string
	CostsSheet     string
	TaxParamsSheet string
	TaxResultSheet string

	// Snapshot cache
	SnapshotTTL time.Duration
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8082"),
		DataBackend: getEnv("DATA_BACKEND", "memory"),

		GoogleSpreadsheetID:   getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleCredentialsJSON: getEnv("GOOGLE_SERVICE_ACCOUNT_JSON", ""),
		GoogleCredentialsFile: getEnv("GOOGLE_SERVICE_ACCOUNT_FILE", ""),

		ProjectsSheet:  getEnv("SHEET_PROJECTS", "Projetos"),
		RevenuesSheet:  getEnv("SHEET_REVENUES", "Receitas_Reais"),
		ExpensesSheet:  getEnv("SHEET_EXPENSES", "Despesas_Reais"),
		CostsSheet:     getEnv("SHEET_COSTS", "Custos_Fixos_Variaveis"),
		TaxParamsSheet: getEnv("SHEET_TAX_PARAMS", "Parametros_Impostos"),
		TaxResultSheet: getEnv("SHEET_TAX_RESULT", "Apuracao_Impostos"),

		SnapshotTTL: getEnvDuration("SNAPSHOT_TTL", 5*time.Minute),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case "memory", "sheets":
	default:
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of [memory sheets]", c.DataBackend))
	}

	if c.DataBackend == "sheets" {
		if c.GoogleSpreadsheetID == "" {
			errors = append(errors, "Google Spreadsheet ID is required when using sheets backend")
		}
		if c.GoogleCredentialsJSON == "" && c.GoogleCredentialsFile == "" {
			errors = append(errors, "either GOOGLE_SERVICE_ACCOUNT_JSON or GOOGLE_SERVICE_ACCOUNT_FILE must be provided for sheets backend")
		}
		if c.GoogleCredentialsFile != "" {
			if _, err := os.Stat(c.GoogleCredentialsFile); os.IsNotExist(err) {
				errors = append(errors, fmt.Sprintf("Google service account file does not exist: %s", c.GoogleCredentialsFile))
			}
		}
		for _, sheet := range []struct{ name, value string }{
			{"SHEET_PROJECTS", c.ProjectsSheet},
			{"SHEET_REVENUES", c.RevenuesSheet},
			{"SHEET_EXPENSES", c.ExpensesSheet},
			{"SHEET_COSTS", c.CostsSheet},
			{"SHEET_TAX_PARAMS", c.TaxParamsSheet},
			{"SHEET_TAX_RESULT", c.TaxResultSheet},
		} {
			if strings.TrimSpace(sheet.value) == "" {
				errors = append(errors, fmt.Sprintf("%s cannot be empty when using sheets backend", sheet.name))
			}
		}
	}

	if c.SnapshotTTL < time.Second {
		errors = append(errors, fmt.Sprintf("invalid snapshot TTL %v: must be at least 1 second", c.SnapshotTTL))
	} else if c.SnapshotTTL > time.Hour {
		errors = append(errors, fmt.Sprintf("invalid snapshot TTL %v: must be at most 1 hour", c.SnapshotTTL))
	}

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

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
