package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/khanhnv2901/scorecheck/internal/logging"
)

const envPrefix = "SCORECHECK"

var (
	cfgFile string
	logDir  string
	debug   bool
)

// AppContext carries what every subcommand needs once the root command has
// loaded configuration.
type AppContext struct {
	Logger     *zap.SugaredLogger
	ResultsDir string
	Config     *CLIConfig
}

type appContextKey struct{}

var globalAppContext *AppContext

func storeAppContext(cmd *cobra.Command, appCtx *AppContext) {
	globalAppContext = appCtx
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, appContextKey{}, appCtx))
}

func getAppContext(cmd *cobra.Command) *AppContext {
	if ctx := cmd.Context(); ctx != nil {
		if appCtx, ok := ctx.Value(appContextKey{}).(*AppContext); ok {
			return appCtx
		}
	}
	return globalAppContext
}

var rootCmd = &cobra.Command{
	Use:           "scorecheck",
	Short:         "Run service availability checks against IPv4 targets and score the results",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		applyConfigDefaults(cmd)

		l, err := logging.New(logging.Options{Dir: logDir, Debug: debug})
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		logger := l.Sugar()

		resultsDir := cliConfig.Output.ResultsDir
		if abs, err := filepath.Abs(resultsDir); err == nil {
			resultsDir = abs
		}
		logger.Debugw("configuration loaded", "config_file", viper.ConfigFileUsed(), "results_dir", resultsDir)

		storeAppContext(cmd, &AppContext{
			Logger:     logger,
			ResultsDir: resultsDir,
			Config:     cliConfig,
		})
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if appCtx := getAppContext(cmd); appCtx != nil && appCtx.Logger != nil {
			_ = appCtx.Logger.Sync()
		}
	},
}

// initConfig reads the config file and binds SCORECHECK_* environment
// variables. A missing default config file is not an error.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".scorecheck")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, colorError("Error:"), err)
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.scorecheck.yaml)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "write a rotated JSON log file to this directory")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(versionCmd)
}
