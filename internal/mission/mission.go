// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mission renders DJI-compatible two-vertex path documents and
// their run-sequenced filenames.
package mission

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/KennethDale/kml-to-multipath/pkg/types"
)

var (
	// disallowedRe matches every rune not allowed in names: anything
	// outside letters, digits, underscore, hyphen, and whitespace.
	// Unicode classes, not \w: non-ASCII letters stay intact.
	disallowedRe = regexp.MustCompile(`[^\p{L}\p{N}_\-\s]`)

	// whitespaceRe matches runs of whitespace for collapsing.
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Sanitize makes a display name or label safe for filenames and XML text.
// Disallowed runes are replaced first, then whitespace runs collapse to a
// single underscore after trimming, so a replaced rune next to a space
// yields two underscores.
func Sanitize(name string) string {
	clean := disallowedRe.ReplaceAllString(name, "_")
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(clean), "_")
}

// Filename builds the output name for the seq-th point of the run: a
// zero-padded sequence number, the sanitized label when one exists, and
// the .kml extension. Names are not deduplicated; if a later point maps
// to an existing filename, its write replaces the earlier file.
func Filename(seq int, label string, hasLabel bool) string {
	if hasLabel {
		return fmt.Sprintf("%03d_%s.kml", seq, Sanitize(label))
	}
	return fmt.Sprintf("%03d.kml", seq)
}

// documentTemplate is the fixed skeleton the downstream mission planner
// accepts. Tag order, nesting, tab indentation, and the style identifiers
// are a compatibility contract and must not change.
const documentTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2" xmlns:gx="http://www.google.com/kml/ext/2.2" xmlns:kml="http://www.opengis.net/kml/2.2" xmlns:atom="http://www.w3.org/2005/Atom">
<Document>
	<name>%s.kml</name>
	<StyleMap id="m_ylw-pushpin">
		<Pair>
			<key>normal</key>
			<styleUrl>#s_ylw-pushpin</styleUrl>
		</Pair>
		<Pair>
			<key>highlight</key>
			<styleUrl>#s_ylw-pushpin_hl</styleUrl>
		</Pair>
	</StyleMap>
	<Style id="s_ylw-pushpin">
		<IconStyle>
			<scale>1.1</scale>
			<Icon>
				<href>http://maps.google.com/mapfiles/kml/pushpin/ylw-pushpin.png</href>
			</Icon>
			<hotSpot x="20" y="2" xunits="pixels" yunits="pixels"/>
		</IconStyle>
	</Style>
	<Style id="s_ylw-pushpin_hl">
		<IconStyle>
			<scale>1.3</scale>
			<Icon>
				<href>http://maps.google.com/mapfiles/kml/pushpin/ylw-pushpin.png</href>
			</Icon>
			<hotSpot x="20" y="2" xunits="pixels" yunits="pixels"/>
		</IconStyle>
	</Style>
	<Placemark>
		<name>%s</name>
		<styleUrl>#m_ylw-pushpin</styleUrl>
		<LineString>
			<tessellate>1</tessellate>
			<coordinates>
				%s
			</coordinates>
		</LineString>
		<atom:link rel="app" href="https://www.google.com/earth/about/versions/#earth-pro" title="Google Earth Pro 7.3.6.10201"></atom:link>
	</Placemark>
</Document>
</kml>`

// Document renders the mission KML for one base-to-target pair. The
// display name is sanitized before it is embedded as the document title
// and the placemark name.
func Document(spec types.MissionSpec) []byte {
	clean := Sanitize(spec.DisplayName)
	coords := coordinate(spec.Base) + " " + coordinate(spec.Target) + " "
	return []byte(fmt.Sprintf(documentTemplate, clean, clean, coords))
}

// Write renders the mission for rec against base and writes it into dir
// under the run-wide sequence number. It returns the filename written.
// The document is built fully in memory; the write is a single call.
func Write(dir string, seq int, rec types.PointRecord, base types.GeoPoint) (string, error) {
	doc := Document(types.MissionSpec{
		Base:        base,
		Target:      rec.Coordinates,
		DisplayName: rec.Name,
	})
	name := Filename(seq, rec.Label, rec.HasLabel)
	if err := os.WriteFile(filepath.Join(dir, name), doc, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return name, nil
}

// coordinate renders lon,lat,alt for the template's coordinate line.
func coordinate(p types.GeoPoint) string {
	return formatComponent(p.Lon) + "," + formatComponent(p.Lat) + "," + formatComponent(p.Alt)
}

// formatComponent renders a coordinate component in minimal decimal form
// that always keeps a fractional part, so 0 renders as "0.0". The
// reference documents carry this form and the planner is matched against
// them byte-for-byte.
func formatComponent(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
