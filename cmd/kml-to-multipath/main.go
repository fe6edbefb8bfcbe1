// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the kml-to-multipath CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the kml-to-multipath CLI.
var rootCmd = &cobra.Command{
	Use:   "kml-to-multipath",
	Short: "Convert KML point markers into DJI mission path documents",
	Long: `kml-to-multipath reads KML marker documents, each carrying point
placemarks, and writes one DJI mission-compatible KML per point. Every output
document draws a straight two-vertex path from a fixed base location to the
target point, numbered in processing order so repeated runs over the same
inputs produce the same filenames.

The convert subcommand performs the full run; points inspects what the parser
extracts from a single marker document.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./kml-to-multipath.yaml or ~/.config/kml-to-multipath/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("kml-to-multipath")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "kml-to-multipath"))
		}
	}

	viper.SetEnvPrefix("KML_TO_MULTIPATH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stringSetting resolves a string option: an explicitly set flag wins,
// then the viper config value, then the flag default.
func stringSetting(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
