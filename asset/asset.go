// Package asset holds the image being annotated and the regions tagged on
// it.
package asset

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/OpticalFlyer/tagger/geom"
)

var (
	// ErrStaleSize means the image on disk no longer has the recorded size
	ErrStaleSize = errors.New("asset size changed")
	// ErrRegionOutOfBounds means a region exceeds the image
	ErrRegionOutOfBounds = errors.New("region out of asset bounds")
)

type State int

const (
	NotVisited State = iota
	Visited
	Tagged
)

func (s State) String() string {
	switch s {
	case NotVisited:
		return "not visited"
	case Visited:
		return "visited"
	case Tagged:
		return "tagged"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Region is a tagged shape in image pixels
type Region struct {
	Tags []string        `json:"tags"`
	Data geom.RegionData `json:"region"`
}

// Asset is one image with its regions
type Asset struct {
	Name    string
	Path    string
	Size    geom.Rect
	State   State
	Regions []Region
}

// New creates an unvisited asset of the given pixel size
func New(path string, size geom.Rect) *Asset {
	return &Asset{
		Name: filepath.Base(path),
		Path: path,
		Size: size,
	}
}

// Visit marks a fresh asset as seen
func (a *Asset) Visit() {
	if a.State == NotVisited {
		a.State = Visited
	}
}

// AddRegion appends a region and marks the asset tagged
func (a *Asset) AddRegion(data geom.RegionData, tags ...string) error {
	if !data.FitsWithin(a.Size) {
		return fmt.Errorf("add %s to %s: %w", data, a.Name, ErrRegionOutOfBounds)
	}
	a.Regions = append(a.Regions, Region{
		Tags: append([]string(nil), tags...),
		Data: data,
	})
	a.State = Tagged
	return nil
}

// Validate checks the asset against the size measured from the image file.
// On any mismatch the regions are dropped and the asset is reset to
// NotVisited.
func (a *Asset) Validate(measured geom.Rect) error {
	if measured != a.Size {
		err := fmt.Errorf("%s: recorded %gx%g, measured %gx%g: %w",
			a.Name, a.Size.Width, a.Size.Height, measured.Width, measured.Height, ErrStaleSize)
		a.reset(measured)
		return err
	}
	for i, r := range a.Regions {
		if !r.Data.FitsWithin(a.Size) {
			err := fmt.Errorf("%s: region %d %s: %w", a.Name, i, r.Data, ErrRegionOutOfBounds)
			a.reset(measured)
			return err
		}
	}
	return nil
}

// Refresh re-validates the asset after its file changed. A still valid
// asset counts as visited; an invalidated one stays NotVisited.
func (a *Asset) Refresh(measured geom.Rect) error {
	if err := a.Validate(measured); err != nil {
		return err
	}
	a.Visit()
	return nil
}

func (a *Asset) reset(size geom.Rect) {
	a.Size = size
	a.Regions = nil
	a.State = NotVisited
}
