package db

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures/demo.yaml
var demoFixture []byte

// Fixture is a catalog snapshot loaded by the seed command.
type Fixture struct {
	Contents  []ContentFixture  `yaml:"contents"`
	Ads       []AdFixture       `yaml:"ads"`
	SliderAds []SliderAdFixture `yaml:"slider_ads"`
	Pinned    []PinnedFixture   `yaml:"pinned"`
}

type ContentFixture struct {
	ID    int64  `yaml:"id"`
	Title string `yaml:"title"`
}

type AdFixture struct {
	ID            int64      `yaml:"id"`
	Name          string     `yaml:"name"`
	Kind          string     `yaml:"kind"`
	Placement     string     `yaml:"placement"`
	Media         string     `yaml:"media"`
	LinkURL       string     `yaml:"link_url"`
	Device        string     `yaml:"device"`
	Page          string     `yaml:"page"`
	Category      string     `yaml:"category"`
	NewsID        *int64     `yaml:"news_id"`
	StartDate     *time.Time `yaml:"start_date"`
	EndDate       *time.Time `yaml:"end_date"`
	Active        bool       `yaml:"active"`
	HeadlineSlot  *int       `yaml:"headline_slot"`
	SecondarySlot *int       `yaml:"secondary_slot"`
}

type SliderAdFixture struct {
	ID            int64  `yaml:"id"`
	Name          string `yaml:"name"`
	ImageURL      string `yaml:"image_url"`
	LinkURL       string `yaml:"link_url"`
	Active        bool   `yaml:"active"`
	HeadlineSlot  *int   `yaml:"headline_slot"`
	SecondarySlot *int   `yaml:"secondary_slot"`
}

// PinnedFixture puts a content item into a headline slot.
type PinnedFixture struct {
	Area      int   `yaml:"area"`
	Slot      int   `yaml:"slot"`
	ContentID int64 `yaml:"content_id"`
}

// DemoFixture returns the built-in demo catalog.
func DemoFixture() (*Fixture, error) {
	return ParseFixture(demoFixture)
}

// LoadFixture reads a fixture file. An empty path yields the demo catalog.
func LoadFixture(path string) (*Fixture, error) {
	if path == "" {
		return DemoFixture()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return ParseFixture(raw)
}

// ParseFixture decodes a YAML fixture. Unknown keys are rejected.
func ParseFixture(raw []byte) (*Fixture, error) {
	var f Fixture
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return &f, nil
}

// WithDefaults fills the permissive defaults for omitted targeting keys.
func (a AdFixture) WithDefaults() AdFixture {
	if a.Kind == "" {
		a.Kind = "image"
	}
	if a.Device == "" {
		a.Device = "all"
	}
	if a.Page == "" {
		a.Page = "all"
	}
	if a.Category == "" {
		a.Category = "all"
	}
	return a
}
