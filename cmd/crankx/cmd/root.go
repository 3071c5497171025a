package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/tapedrive-io/crankx/config"
)

var (
	// Version is the version of the binary.
	Version string

	// Commit is the commit hash of the binary.
	Commit string
)

var (
	cfgFile string
	cfg     = config.DefaultConfig()
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "crankx",
	Short: "Proof-of-access tooling for tape segments",
	Long: `crankx produces and checks proofs of access: proofs that bind a
memory-hard proof of work over a challenge to the exact bytes of a data
segment, so they cannot be produced without holding the data.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig(cmd)
	},
}

// Execute runs the root command and exits on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to an optional config file")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("datadir", cfg.DataDir, "directory for persisted proofs")
	rootCmd.PersistentFlags().Uint("segment-size", cfg.SegmentSize, "segment size, in bytes")
	rootCmd.PersistentFlags().Uint("search-difficulty", cfg.SearchDifficulty, "minimal leading zero bits of an acceptable digest")
	rootCmd.PersistentFlags().Uint("search-workers", cfg.SearchWorkers, "number of concurrent search workers")
}

func initConfig(cmd *cobra.Command) error {
	vip := viper.New()
	if err := vip.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		return err
	}

	// CLI args take priority over the config file.
	if cfgFile != "" {
		vip.SetConfigFile(cfgFile)
		if err := vip.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := vip.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var err error
	if vip.GetBool("debug") {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	return err
}
