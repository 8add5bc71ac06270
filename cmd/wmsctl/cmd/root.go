package cmd

import (
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"wms/config"
	"wms/database"
	"wms/pkg/logger"
)

var (
	cfg      config.AppConfig
	dbDriver string
	dbPath   string
)

var rootCmd = &cobra.Command{
	Use:          "wmsctl",
	Short:        "Operator tools for the warehouse order service",
	SilenceUsage: true,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		if dbDriver != "" {
			cfg.DBDriver = dbDriver
		}
		if dbPath != "" {
			cfg.DBPath = dbPath
		}
		logger.Init(cfg.LogLevel, cfg.LogFormat)
	},
}

func Execute() error { return rootCmd.Execute() }

func openDB() (*gorm.DB, error) { return database.Open(cfg) }

func init() {
	rootCmd.PersistentFlags().StringVar(&dbDriver, "driver", "", "Database driver (sqlite|mysql), overrides DB_DRIVER")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the SQLite database, overrides DB_PATH")
}
