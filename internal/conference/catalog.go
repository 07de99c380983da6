// Package conference loads the immutable conference catalog: the static conference
// description and the ordered list of talk tracks.
package conference

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"conferenceassistant/internal/domain"
)

//go:embed catalog.json
var defaultCatalog []byte

// Catalog is loaded once at start and shared read-only by all handlers.
type Catalog struct {
	info   domain.ConferenceInfo
	tracks []domain.Track
	byName map[string]int
}

type catalogDocument struct {
	Info   domain.ConferenceInfo `json:"info"`
	Tracks []domain.Track        `json:"tracks"`
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load returns the catalog stored at path, or the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a catalog document. Track names must be non-empty and unique.
func Parse(raw []byte) (*Catalog, error) {
	var doc catalogDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(doc.Tracks) == 0 {
		return nil, fmt.Errorf("catalog has no tracks")
	}
	byName := make(map[string]int, len(doc.Tracks))
	for i, t := range doc.Tracks {
		if t.Name == "" {
			return nil, fmt.Errorf("catalog track %d has no name", i)
		}
		if _, dup := byName[t.Name]; dup {
			return nil, fmt.Errorf("catalog track %q is listed twice", t.Name)
		}
		byName[t.Name] = i
	}
	return &Catalog{info: doc.Info, tracks: doc.Tracks, byName: byName}, nil
}

// Info returns a copy of the conference description.
func (c *Catalog) Info() domain.ConferenceInfo {
	info := c.info
	info.Hotels = append([]domain.Hotel(nil), c.info.Hotels...)
	info.Stats.AttendeeTypes = append([]string(nil), c.info.Stats.AttendeeTypes...)
	return info
}

// Tracks returns the tracks in catalog order.
func (c *Catalog) Tracks() []domain.Track {
	return append([]domain.Track(nil), c.tracks...)
}

// TrackNames returns the track names in catalog order.
func (c *Catalog) TrackNames() []string {
	names := make([]string, len(c.tracks))
	for i, t := range c.tracks {
		names[i] = t.Name
	}
	return names
}

// HasTrack reports whether name is a catalog track.
func (c *Catalog) HasTrack(name string) bool {
	_, ok := c.byName[name]
	return ok
}
