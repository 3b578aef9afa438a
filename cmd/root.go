package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tally/internal/app"
	"tally/internal/config"
	"tally/internal/logging"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	if err := initConfig(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	logLevel := cfg.Log.Level
	if hasVerboseFlag() {
		logLevel = "debug"
	}
	log := logging.New(logLevel)

	application, cleanup, err := app.NewApp(cfg, migrations, log)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	defer cleanup()

	rootCmd := &cobra.Command{
		Use:           "tally",
		Short:         "tally is a CLI ledger for tracking income and expenses",
		Long:          `tally is a CLI ledger for tracking income and expenses`,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(NewAddCmd(application.Service))
	rootCmd.AddCommand(NewListCmd(application.Service))
	rootCmd.AddCommand(NewShowCmd(application.Service))
	rootCmd.AddCommand(NewEditCmd(application.Service))
	rootCmd.AddCommand(NewDeleteCmd(application.Service))
	rootCmd.AddCommand(NewStatsCmd(application.Service))
	rootCmd.AddCommand(NewAPICmd(application.Gateway))

	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(capitalize(err.Error()))
		os.Exit(1)
	}
}

func initConfig() error {
	if cfgFile == "" {
		cfgFile = configFileFromArgs()
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := getAppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetDefault("database.backend", "sqlite")
	viper.SetDefault("database.path", "")
	viper.SetDefault("defaults.type", "expense")
	viper.SetDefault("log.level", "warn")

	viper.SetEnvPrefix("TALLY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

// configFileFromArgs pre-scans the arguments because config must be loaded
// before cobra parses flags.
func configFileFromArgs() string {
	args := os.Args[1:]
	for i, a := range args {
		switch {
		case a == "--config" || a == "-c":
			if i+1 < len(args) {
				return args[i+1]
			}
		case strings.HasPrefix(a, "--config="):
			return strings.TrimPrefix(a, "--config=")
		}
	}
	return ""
}

func hasVerboseFlag() bool {
	for _, a := range os.Args[1:] {
		if a == "--verbose" || a == "-v" {
			return true
		}
	}
	return false
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".tally"), nil
	}

	return filepath.Join(configDir, "tally"), nil
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
