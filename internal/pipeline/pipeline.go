// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline orchestrates a full conversion run: one base point, a
// sorted sweep over the marker documents, one mission file per extracted
// point.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/KennethDale/kml-to-multipath/internal/kml"
	"github.com/KennethDale/kml-to-multipath/internal/mission"
	"github.com/KennethDale/kml-to-multipath/pkg/types"
)

// Summary holds the outcome of a conversion run.
type Summary struct {
	Written         int
	DocumentsFailed int
}

// HasFailures reports whether any marker document failed to parse.
func (s Summary) HasFailures() bool {
	return s.DocumentsFailed > 0
}

// Run executes a full conversion. The base point is resolved first and
// its failure aborts before anything is written. Marker documents are
// processed in lexicographic filename order so the run-wide sequence
// numbers are reproducible; a document that fails to parse is reported
// on w and skipped, never aborting its siblings. The sequence counter is
// threaded through the loop rather than held as package state.
func Run(cfg types.Config, w io.Writer) (Summary, error) {
	base, err := kml.ParseFirstPoint(cfg.BaseKML)
	if err != nil {
		return Summary{}, fmt.Errorf("resolving base point: %w", err)
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating output directory: %w", err)
	}

	files, err := markerFiles(cfg.InputDir)
	if err != nil {
		return Summary{}, err
	}
	if len(files) == 0 {
		fmt.Fprintf(w, "no marker documents in %s\n", cfg.InputDir)
	}

	var summary Summary
	seq := 0
	for _, f := range files {
		records, err := kml.ParsePlacemarks(f)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", filepath.Base(f), err)
			summary.DocumentsFailed++
			continue
		}
		for _, rec := range records {
			seq++
			name, err := mission.Write(cfg.OutputDir, seq, rec, base)
			if err != nil {
				return summary, err
			}
			fmt.Fprintf(w, "wrote:   %s\n", name)
			summary.Written++
		}
	}

	fmt.Fprintf(w, "\nRun summary: %d written, %d documents failed\n",
		summary.Written, summary.DocumentsFailed)
	return summary, nil
}

// markerFiles lists the *.kml files in dir in lexicographic order. A
// missing directory yields an empty list, matching the reference tool's
// warn-and-continue behavior.
func markerFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading input directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".kml") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}
