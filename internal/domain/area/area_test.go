package area

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalcoban/coban/internal/shared/id"
)

func newTestArea(t *testing.T) *Area {
	t.Helper()
	a, err := NewArea(1, "North pasture", 39.92, 32.85)
	require.NoError(t, err)
	require.NotNil(t, a)
	return a
}

func TestNewArea(t *testing.T) {
	a := newTestArea(t)

	assert.Equal(t, uint(1), a.UserID())
	assert.Equal(t, "North pasture", a.Name())
	assert.Equal(t, 39.92, a.Latitude())
	assert.Equal(t, 32.85, a.Longitude())
	assert.True(t, strings.HasPrefix(a.SID(), id.PrefixArea+"_"))
}

func TestNewArea_Validation(t *testing.T) {
	tests := []struct {
		name     string
		userID   uint
		areaName string
		lat      float64
		lng      float64
	}{
		{"zero user ID", 0, "North pasture", 39.92, 32.85},
		{"empty name", 1, "", 39.92, 32.85},
		{"latitude too low", 1, "North pasture", -90.1, 32.85},
		{"latitude too high", 1, "North pasture", 90.1, 32.85},
		{"longitude too low", 1, "North pasture", 39.92, -180.1},
		{"longitude too high", 1, "North pasture", 39.92, 180.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewArea(tt.userID, tt.areaName, tt.lat, tt.lng)
			assert.Error(t, err)
			assert.Nil(t, a)
		})
	}
}

func TestReconstructArea(t *testing.T) {
	now := time.Now().UTC()

	a, err := ReconstructArea(5, "area_xyz789", 1, "South pasture", 36.2, 29.6, now, now)
	require.NoError(t, err)
	assert.Equal(t, uint(5), a.ID())
	assert.Equal(t, "South pasture", a.Name())

	_, err = ReconstructArea(0, "area_xyz789", 1, "South pasture", 36.2, 29.6, now, now)
	assert.Error(t, err)

	_, err = ReconstructArea(5, "area_xyz789", 0, "South pasture", 36.2, 29.6, now, now)
	assert.Error(t, err)
}

func TestArea_Relocate(t *testing.T) {
	a := newTestArea(t)

	require.NoError(t, a.Relocate(41.0, 28.9))
	assert.Equal(t, 41.0, a.Latitude())
	assert.Equal(t, 28.9, a.Longitude())

	assert.Error(t, a.Relocate(95, 28.9))
	assert.Error(t, a.Relocate(41.0, 190))
	assert.Equal(t, 41.0, a.Latitude(), "failed relocate must not move the area")
}

func TestArea_Rename(t *testing.T) {
	a := newTestArea(t)

	require.NoError(t, a.Rename("West pasture"))
	assert.Equal(t, "West pasture", a.Name())

	assert.Error(t, a.Rename(""))
}

func TestArea_SetID(t *testing.T) {
	a := newTestArea(t)

	require.NoError(t, a.SetID(9))
	assert.Error(t, a.SetID(10))
	assert.Error(t, newTestArea(t).SetID(0))
}
