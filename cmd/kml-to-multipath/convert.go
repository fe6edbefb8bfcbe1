package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/KennethDale/kml-to-multipath/internal/pipeline"
	"github.com/KennethDale/kml-to-multipath/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Generate one mission document per marker point",
	Long: `Convert resolves the base point, sweeps the input directory for *.kml
marker documents in filename order, and writes one two-vertex mission KML per
extracted point into the output directory. A marker document that fails to
parse is reported and skipped; a missing or pointless base document aborts the
run before anything is written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := types.Config{
			BaseKML:   stringSetting(cmd, "base-kml", "base_kml"),
			InputDir:  stringSetting(cmd, "input-dir", "input_dir"),
			OutputDir: stringSetting(cmd, "output-dir", "output_dir"),
		}
		_, err := pipeline.Run(cfg, os.Stderr)
		return err
	},
}

func init() {
	convertCmd.Flags().String("base-kml", "base_kml/base.kml", "single-point KML holding the base location")
	convertCmd.Flags().String("input-dir", "input_points_kml", "directory of marker documents")
	convertCmd.Flags().String("output-dir", "output_paths", "directory mission documents are written into")

	rootCmd.AddCommand(convertCmd)
}
