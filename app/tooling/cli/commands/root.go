// Package commands contains the set of commands for the cli client.
package commands

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var (
	url        string
	configPath string
)

// config represents the optional values that can be loaded from a
// configuration file instead of being passed on the command line.
type config struct {
	URL string `yaml:"url"`
}

var rootCmd = &cobra.Command{
	Use:   "cli",
	Short: "Command line client for the ledger node",
}

func init() {
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		loadConfig()
	}
	rootCmd.PersistentFlags().StringVarP(&url, "url", "u", "http://localhost:3000", "Url of the node.")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a yaml config file.")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig applies the values from the config file when one is specified.
// Flags given on the command line win over the config file.
func loadConfig() {
	if configPath == "" {
		return
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		log.Fatal(err)
	}

	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.URL != "" && !rootCmd.PersistentFlags().Changed("url") {
		url = cfg.URL
	}
}
