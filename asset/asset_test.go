package asset

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpticalFlyer/tagger/geom"
)

func TestAddRegionMarksTagged(t *testing.T) {
	a := New("/data/cat.png", geom.NewRect(100, 50))
	assert.Equal(t, "cat.png", a.Name)
	assert.Equal(t, NotVisited, a.State)

	a.Visit()
	assert.Equal(t, Visited, a.State)

	require.NoError(t, a.AddRegion(geom.BuildRectRegionData(10, 10, 20, 20), "cat"))
	assert.Equal(t, Tagged, a.State)
	require.Len(t, a.Regions, 1)
	assert.Equal(t, []string{"cat"}, a.Regions[0].Tags)

	a.Visit()
	assert.Equal(t, Tagged, a.State)
}

func TestAddRegionRejectsOutOfBounds(t *testing.T) {
	a := New("cat.png", geom.NewRect(100, 50))
	err := a.AddRegion(geom.BuildRectRegionData(90, 10, 20, 20))
	assert.ErrorIs(t, err, ErrRegionOutOfBounds)
	assert.Empty(t, a.Regions)
	assert.Equal(t, NotVisited, a.State)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		regions  []geom.RegionData
		measured geom.Rect
		wantErr  error
	}{
		{
			name:     "unchanged",
			regions:  []geom.RegionData{geom.BuildRectRegionData(0, 0, 100, 50)},
			measured: geom.NewRect(100, 50),
		},
		{
			name:     "resized",
			regions:  []geom.RegionData{geom.BuildPointRegionData(5, 5)},
			measured: geom.NewRect(200, 50),
			wantErr:  ErrStaleSize,
		},
		{
			name:     "region outside",
			regions:  []geom.RegionData{geom.BuildPointRegionData(150, 5)},
			measured: geom.NewRect(100, 50),
			wantErr:  ErrRegionOutOfBounds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New("cat.png", geom.NewRect(100, 50))
			a.State = Tagged
			for _, r := range tt.regions {
				a.Regions = append(a.Regions, Region{Data: r})
			}

			err := a.Validate(tt.measured)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, Tagged, a.State)
				assert.Len(t, a.Regions, len(tt.regions))
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Empty(t, a.Regions)
			assert.Equal(t, NotVisited, a.State)
			assert.Equal(t, tt.measured, a.Size)
		})
	}
}

func TestRegionJSON(t *testing.T) {
	data, err := json.Marshal(Region{Tags: []string{"dog"}, Data: geom.BuildPointRegionData(3, 4)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tags":["dog"],"region":{"type":"POINT","x":3,"y":4,"width":0,"height":0,"points":[{"x":3,"y":4}]}}`, string(data))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "tagged", Tagged.String())
	assert.Equal(t, "State(9)", State(9).String())
}

func TestRefresh(t *testing.T) {
	a := New("cat.png", geom.NewRect(100, 50))
	require.NoError(t, a.Refresh(geom.NewRect(100, 50)))
	assert.Equal(t, Visited, a.State)

	require.NoError(t, a.AddRegion(geom.BuildPointRegionData(1, 1)))
	err := a.Refresh(geom.NewRect(50, 50))
	assert.ErrorIs(t, err, ErrStaleSize)
	assert.Equal(t, NotVisited, a.State)
	assert.Empty(t, a.Regions)
}
