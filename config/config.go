package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type AppConfig struct {
	Port            string
	Timezone        string
	DBDriver        string // sqlite|mysql
	DBPath          string
	DBDSN           string
	LogLevel        string
	LogFormat       string // text|json
	ImportMaxFileMB int
	ImportOperator  string
	TemplateVBAPath string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("[cfg] no .env file loaded: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		v, err := strconv.Atoi(os.Getenv(k))
		if err != nil || v <= 0 {
			return def
		}
		return v
	}
	cfg := AppConfig{
		Port:            get("PORT", "8080"),
		Timezone:        get("TZ", "Asia/Ho_Chi_Minh"),
		DBDriver:        get("DB_DRIVER", "sqlite"),
		DBPath:          get("DB_PATH", "wms.db"),
		DBDSN:           get("DB_DSN", ""),
		LogLevel:        get("LOG_LEVEL", "info"),
		LogFormat:       get("LOG_FORMAT", "text"),
		ImportMaxFileMB: getInt("IMPORT_MAX_FILE_MB", 25),
		ImportOperator:  get("IMPORT_OPERATOR", "ExcelImport"),
		TemplateVBAPath: get("TEMPLATE_VBA_PROJECT", ""),
	}
	return cfg
}

// Fields is the loggable view of the config; the DSN may carry credentials.
func (c AppConfig) Fields() logrus.Fields {
	return logrus.Fields{
		"port":        c.Port,
		"tz":          c.Timezone,
		"db_driver":   c.DBDriver,
		"db_path":     c.DBPath,
		"log_level":   c.LogLevel,
		"import_max":  c.ImportMaxFileMB,
		"vba_project": c.TemplateVBAPath,
	}
}

// LoadVBAProject reads the compiled template macro project, if one is
// configured. A nil slice means templates are generated without macros.
func (c AppConfig) LoadVBAProject() ([]byte, error) {
	if c.TemplateVBAPath == "" {
		return nil, nil
	}
	b, err := os.ReadFile(c.TemplateVBAPath)
	if err != nil {
		return nil, fmt.Errorf("read TEMPLATE_VBA_PROJECT: %w", err)
	}
	return b, nil
}
