package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/KennethDale/kml-to-multipath/internal/kml"
	"github.com/KennethDale/kml-to-multipath/pkg/types"
)

// pointsReport is the YAML shape of the points subcommand output.
type pointsReport struct {
	Source string              `yaml:"source"`
	Count  int                 `yaml:"count"`
	Points []types.PointRecord `yaml:"points"`
}

var pointsCmd = &cobra.Command{
	Use:   "points <marker.kml>",
	Short: "List the points extracted from one marker document",
	Long: `Points parses a single marker document and prints the extracted records
as YAML: name, coordinates, and the label scraped from the description's
header table row when one exists. Useful for checking what convert would do
with a document before running the full pipeline.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := kml.ParsePlacemarks(args[0])
		if err != nil {
			return err
		}

		report := pointsReport{
			Source: args[0],
			Count:  len(records),
			Points: records,
		}
		data, err := yaml.Marshal(&report)
		if err != nil {
			return fmt.Errorf("marshaling point report: %w", err)
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		return os.WriteFile(out, data, 0o644)
	},
}

func init() {
	pointsCmd.Flags().String("out", "", "write the YAML report to a file instead of stdout")

	rootCmd.AddCommand(pointsCmd)
}
