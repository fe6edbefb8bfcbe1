// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package kml extracts point placemarks from KML marker documents.
package kml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/KennethDale/kml-to-multipath/internal/label"
	"github.com/KennethDale/kml-to-multipath/pkg/types"
)

// Namespace is the KML 2.2 namespace. Real-world documents declare it
// inconsistently, so every element lookup tries the qualified name first
// and falls back to the bare local name.
const Namespace = "http://www.opengis.net/kml/2.2"

// ErrNoPoint is returned by ParseFirstPoint when no element in the
// document yields at least two usable coordinate components.
var ErrNoPoint = errors.New("no usable point in document")

// element is a generic decoded XML node. Decoding into a tree rather than
// fixed structs keeps descendant lookups namespace-agnostic: the two
// dialects (namespaced and bare) are structurally distinct, and each
// lookup resolves them as an explicit two-step search.
type element struct {
	XMLName  xml.Name
	Text     string    `xml:",chardata"`
	Children []element `xml:",any"`
}

// findAll returns every descendant with the given local name. Qualified
// matches win: only when the document yields none does the search repeat
// without a namespace.
func (e *element) findAll(local string) []*element {
	if qualified := e.collect(local, Namespace); len(qualified) > 0 {
		return qualified
	}
	return e.collect(local, "")
}

// find returns the first descendant with the given local name, or nil.
func (e *element) find(local string) *element {
	if matches := e.findAll(local); len(matches) > 0 {
		return matches[0]
	}
	return nil
}

// collect walks the subtree depth-first and gathers descendants whose
// name matches local in the given namespace.
func (e *element) collect(local, space string) []*element {
	var out []*element
	for i := range e.Children {
		c := &e.Children[i]
		if c.XMLName.Local == local && c.XMLName.Space == space {
			out = append(out, c)
		}
		out = append(out, c.collect(local, space)...)
	}
	return out
}

// parseFile decodes the document at path into an element tree.
func parseFile(path string) (*element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var root element
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &root, nil
}

// parseCoordinates splits a "lon,lat[,alt]" coordinate string. It reports
// false when fewer than two numeric components are present; a missing or
// unparsable altitude defaults to 0.
func parseCoordinates(text string) (types.GeoPoint, bool) {
	parts := strings.Split(strings.TrimSpace(text), ",")
	if len(parts) < 2 {
		return types.GeoPoint{}, false
	}
	lon, lonErr := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lat, latErr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if lonErr != nil || latErr != nil {
		return types.GeoPoint{}, false
	}
	p := types.GeoPoint{Lon: lon, Lat: lat}
	if len(parts) > 2 {
		if alt, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64); err == nil {
			p.Alt = alt
		}
	}
	return p, true
}

// ParsePlacemarks extracts every placemark with usable coordinates from
// the marker document at path. Placemarks lacking two coordinate
// components are skipped silently and do not consume a default-name
// ordinal. Placemarks without a declared name are assigned Point_<n>, n
// counting materialized records in document order. Descriptions are fed
// through the label extractor so each record arrives enriched.
func ParsePlacemarks(path string) ([]types.PointRecord, error) {
	root, err := parseFile(path)
	if err != nil {
		return nil, err
	}

	var records []types.PointRecord
	for _, pm := range root.findAll("Placemark") {
		coords := pm.find("coordinates")
		if coords == nil {
			continue
		}
		point, ok := parseCoordinates(coords.Text)
		if !ok {
			continue
		}

		rec := types.PointRecord{Coordinates: point}
		if n := pm.find("name"); n != nil {
			rec.Name = strings.TrimSpace(n.Text)
		}
		if rec.Name == "" {
			rec.Name = fmt.Sprintf("Point_%d", len(records)+1)
		}
		if d := pm.find("description"); d != nil {
			rec.Description = d.Text
		}
		rec.Label, rec.HasLabel = label.FromDescription(rec.Description)

		records = append(records, rec)
	}
	return records, nil
}

// ParseFirstPoint returns the coordinates of the first usable point in
// the document at path, ignoring names and descriptions. This is the
// single-point mode used for the base document; unlike the bulk path,
// failure here is meant to abort the run.
func ParseFirstPoint(path string) (types.GeoPoint, error) {
	root, err := parseFile(path)
	if err != nil {
		return types.GeoPoint{}, err
	}
	for _, c := range root.findAll("coordinates") {
		if p, ok := parseCoordinates(c.Text); ok {
			return p, nil
		}
	}
	return types.GeoPoint{}, fmt.Errorf("%s: %w", path, ErrNoPoint)
}
