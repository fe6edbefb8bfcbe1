// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for the conversion pipeline.
package types

// GeoPoint is a single WGS84 position. Alt is 0 when the source coordinate
// text carried only two components. Values pass through without bounds
// validation; the mission planner owns that concern.
type GeoPoint struct {
	Lon float64 `json:"lon" yaml:"lon"`
	Lat float64 `json:"lat" yaml:"lat"`
	Alt float64 `json:"alt" yaml:"alt"`
}

// PointRecord is one placemark extracted from a marker document.
type PointRecord struct {
	// Name is the placemark's declared name, or a synthesized Point_<n>
	// default when the document declares none.
	Name string `json:"name" yaml:"name"`

	// Coordinates is the marker position.
	Coordinates GeoPoint `json:"coordinates" yaml:"coordinates"`

	// Description is the raw HTML fragment embedded in the placemark,
	// empty when the document carries none.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Label is the attribute scraped from the description's header table
	// row. HasLabel distinguishes a missing label from an empty string.
	Label    string `json:"label,omitempty" yaml:"label,omitempty"`
	HasLabel bool   `json:"-" yaml:"-"`
}

// MissionSpec is one base-to-target pair consumed by the mission renderer.
type MissionSpec struct {
	Base        GeoPoint
	Target      GeoPoint
	DisplayName string
}
