package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile  string
	recreate bool
	truncate bool
)

var RootCmd = &cobra.Command{
	Use:   "mysql2pg",
	Short: "MySQL to PostgreSQL migration tool",
	Long: `Copies table structure and row data from a MySQL database to a
PostgreSQL database.

Without flags only the schema comparison is printed (dry run).
Passing --recreate, --truncate or --chunk-size performs the migration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMigrate,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default is ./mysql2pg.yaml)")
	RootCmd.Flags().BoolVar(&recreate, "recreate", false, "drop and recreate target tables that already exist")
	RootCmd.Flags().BoolVar(&truncate, "truncate", false, "truncate target tables that already exist")
	// chunk-size flows through the viper binding below so the config
	// file can provide it too; viper is the single source of truth.
	RootCmd.Flags().Int("chunk-size", 1000, "number of rows per transfer batch")

	viper.BindPFlag("settings.chunk_size", RootCmd.Flags().Lookup("chunk-size"))
	viper.SetDefault("settings.chunk_size", 1000)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("mysql2pg")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("MYSQL2PG")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
