// Package cli wires the policynav commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ranacirrusgo/policynav/internal/model"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "policynav",
	Short: "Policy Navigator - government regulation search and compliance analysis",
	Long: `Policy Navigator answers questions about government regulations,
executive orders, and compliance requirements.

It searches a local policy knowledge base, queries the Federal
Register for regulation status, pulls relevant case law from
CourtListener, and extracts compliance requirements (mandatory,
optional, prohibited, deadlines, penalties) from policy text.

Reports describe what the documents say. They are not legal advice.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("policynav v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.policynav/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(filepath.Join(home, ".policynav"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match POLICYNAV_*
	viper.SetEnvPrefix("POLICYNAV")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig builds the runtime configuration from defaults, the
// config file, and environment overrides.
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	if err := viper.Unmarshal(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid configuration, using defaults: %v\n", err)
		cfg = model.DefaultConfig()
	}

	if cfg.Cache.Dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfg.Cache.Dir = filepath.Join(home, ".policynav", "cache")
		} else {
			cfg.Cache.Dir = ".policynav-cache"
		}
	}

	if key := os.Getenv("OPENAI_API_KEY"); key != "" && cfg.Embedding.APIKey == "" {
		cfg.Embedding.APIKey = key
	}
	if token := os.Getenv("COURTLISTENER_TOKEN"); token != "" && cfg.APIs.CourtListenerToken == "" {
		cfg.APIs.CourtListenerToken = token
	}
	if hook := os.Getenv("SLACK_WEBHOOK_URL"); hook != "" && cfg.Notify.SlackWebhookURL == "" {
		cfg.Notify.SlackWebhookURL = hook
	}

	cfg.Output.Verbose = verbose

	return cfg
}
