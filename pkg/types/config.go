package types

// Config holds the input and output locations for a conversion run.
type Config struct {
	// BaseKML is the path to the single-point KML holding the base location.
	BaseKML string `json:"base_kml" yaml:"base_kml"`

	// InputDir is the directory scanned for *.kml marker documents.
	InputDir string `json:"input_dir" yaml:"input_dir"`

	// OutputDir is the directory mission documents are written into.
	// Created if absent.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}
