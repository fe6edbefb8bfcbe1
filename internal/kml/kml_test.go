// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package kml

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeKML writes a KML document into a temp dir and returns its path.
func writeKML(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const namespacedDoc = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Placemark>
      <name>Tower A</name>
      <Point><coordinates>-122.2,47.7,10</coordinates></Point>
    </Placemark>
    <Placemark>
      <name>Tower B</name>
      <Point><coordinates>-122.3,47.8</coordinates></Point>
    </Placemark>
  </Document>
</kml>`

const bareDoc = `<?xml version="1.0" encoding="UTF-8"?>
<kml>
  <Document>
    <Placemark>
      <name>Bare</name>
      <Point><coordinates>10.5,59.9,4.5</coordinates></Point>
    </Placemark>
  </Document>
</kml>`

func TestParsePlacemarks_Namespaced(t *testing.T) {
	path := writeKML(t, "towers.kml", namespacedDoc)

	records, err := ParsePlacemarks(path)
	if err != nil {
		t.Fatalf("ParsePlacemarks: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	if records[0].Name != "Tower A" {
		t.Errorf("name = %q, want %q", records[0].Name, "Tower A")
	}
	got := records[0].Coordinates
	if got.Lon != -122.2 || got.Lat != 47.7 || got.Alt != 10 {
		t.Errorf("coordinates = %+v, want -122.2,47.7,10", got)
	}

	// Two-component coordinates default the altitude to 0.
	if alt := records[1].Coordinates.Alt; alt != 0 {
		t.Errorf("two-component altitude = %v, want 0", alt)
	}
}

func TestParsePlacemarks_NoNamespace(t *testing.T) {
	path := writeKML(t, "bare.kml", bareDoc)

	records, err := ParsePlacemarks(path)
	if err != nil {
		t.Fatalf("ParsePlacemarks: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Name != "Bare" {
		t.Errorf("name = %q, want %q", records[0].Name, "Bare")
	}
	got := records[0].Coordinates
	if got.Lon != 10.5 || got.Lat != 59.9 || got.Alt != 4.5 {
		t.Errorf("coordinates = %+v, want 10.5,59.9,4.5", got)
	}
}

func TestParsePlacemarks_SkipsShortCoordinates(t *testing.T) {
	doc := `<kml xmlns="http://www.opengis.net/kml/2.2"><Document>
<Placemark><Point><coordinates>-1.0</coordinates></Point></Placemark>
<Placemark><Point><coordinates>-2.0,50.0</coordinates></Point></Placemark>
<Placemark><Point><coordinates></coordinates></Point></Placemark>
<Placemark><Point><coordinates>-3.0,51.0,7</coordinates></Point></Placemark>
</Document></kml>`
	path := writeKML(t, "short.kml", doc)

	records, err := ParsePlacemarks(path)
	if err != nil {
		t.Fatalf("ParsePlacemarks: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	// Skipped markers do not consume a default-name ordinal.
	if records[0].Name != "Point_1" {
		t.Errorf("first name = %q, want Point_1", records[0].Name)
	}
	if records[1].Name != "Point_2" {
		t.Errorf("second name = %q, want Point_2", records[1].Name)
	}
}

func TestParsePlacemarks_DefaultNames(t *testing.T) {
	doc := `<kml xmlns="http://www.opengis.net/kml/2.2"><Document>
<Placemark><Point><coordinates>-1.0,50.0</coordinates></Point></Placemark>
<Placemark><name></name><Point><coordinates>-2.0,51.0</coordinates></Point></Placemark>
<Placemark><Point><coordinates>-3.0,52.0</coordinates></Point></Placemark>
</Document></kml>`
	path := writeKML(t, "unnamed.kml", doc)

	records, err := ParsePlacemarks(path)
	if err != nil {
		t.Fatalf("ParsePlacemarks: %v", err)
	}

	want := []string{"Point_1", "Point_2", "Point_3"}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d", len(records), len(want))
	}
	for i, w := range want {
		if records[i].Name != w {
			t.Errorf("record %d name = %q, want %q", i, records[i].Name, w)
		}
	}
}

func TestParsePlacemarks_LabelEnrichment(t *testing.T) {
	doc := `<kml xmlns="http://www.opengis.net/kml/2.2"><Document>
<Placemark>
  <name>Annotated</name>
  <description><![CDATA[<table><tr style="background:#def"><td>Ridge 7</td></tr></table>]]></description>
  <Point><coordinates>-4.0,53.0</coordinates></Point>
</Placemark>
<Placemark>
  <name>Plain</name>
  <description>no table here</description>
  <Point><coordinates>-5.0,54.0</coordinates></Point>
</Placemark>
</Document></kml>`
	path := writeKML(t, "annotated.kml", doc)

	records, err := ParsePlacemarks(path)
	if err != nil {
		t.Fatalf("ParsePlacemarks: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	if !records[0].HasLabel || records[0].Label != "Ridge 7" {
		t.Errorf("label = %q (has=%v), want Ridge 7", records[0].Label, records[0].HasLabel)
	}
	if records[1].HasLabel {
		t.Errorf("unexpected label %q on plain record", records[1].Label)
	}
}

func TestParsePlacemarks_MalformedXML(t *testing.T) {
	path := writeKML(t, "broken.kml", "<kml><Document><Placemark>")

	if _, err := ParsePlacemarks(path); err == nil {
		t.Fatal("expected parse error for malformed document")
	}
}

func TestParsePlacemarks_MissingFile(t *testing.T) {
	if _, err := ParsePlacemarks(filepath.Join(t.TempDir(), "absent.kml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseFirstPoint(t *testing.T) {
	path := writeKML(t, "base.kml", namespacedDoc)

	p, err := ParseFirstPoint(path)
	if err != nil {
		t.Fatalf("ParseFirstPoint: %v", err)
	}
	if p.Lon != -122.2 || p.Lat != 47.7 || p.Alt != 10 {
		t.Errorf("point = %+v, want -122.2,47.7,10", p)
	}
}

func TestParseFirstPoint_SkipsUnusable(t *testing.T) {
	doc := `<kml><Document>
<Placemark><Point><coordinates>only-one</coordinates></Point></Placemark>
<Placemark><Point><coordinates>1.5,2.5</coordinates></Point></Placemark>
</Document></kml>`
	path := writeKML(t, "base.kml", doc)

	p, err := ParseFirstPoint(path)
	if err != nil {
		t.Fatalf("ParseFirstPoint: %v", err)
	}
	if p.Lon != 1.5 || p.Lat != 2.5 {
		t.Errorf("point = %+v, want 1.5,2.5", p)
	}
}

func TestParseFirstPoint_NoPoint(t *testing.T) {
	doc := `<kml><Document><Placemark><name>empty</name></Placemark></Document></kml>`
	path := writeKML(t, "base.kml", doc)

	_, err := ParseFirstPoint(path)
	if !errors.Is(err, ErrNoPoint) {
		t.Fatalf("err = %v, want ErrNoPoint", err)
	}
}

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name string
		text string
		want struct{ lon, lat, alt float64 }
		ok   bool
	}{
		{name: "three components", text: "-122.1,47.6,15.5", want: struct{ lon, lat, alt float64 }{-122.1, 47.6, 15.5}, ok: true},
		{name: "two components", text: "-122.1,47.6", want: struct{ lon, lat, alt float64 }{-122.1, 47.6, 0}, ok: true},
		{name: "surrounding whitespace", text: "\n  -122.1, 47.6 ,3\n", want: struct{ lon, lat, alt float64 }{-122.1, 47.6, 3}, ok: true},
		{name: "one component", text: "-122.1", ok: false},
		{name: "empty", text: "", ok: false},
		{name: "non-numeric", text: "lon,lat", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := parseCoordinates(tt.text)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if p.Lon != tt.want.lon || p.Lat != tt.want.lat || p.Alt != tt.want.alt {
				t.Errorf("point = %+v, want %+v", p, tt.want)
			}
		})
	}
}
