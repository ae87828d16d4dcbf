package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoFixture(t *testing.T) {
	f, err := DemoFixture()
	require.NoError(t, err)

	assert.Len(t, f.Contents, 5)
	assert.Len(t, f.Ads, 5)
	require.Len(t, f.SliderAds, 1)
	assert.Equal(t, 2, *f.SliderAds[0].SecondarySlot)

	slots := map[[2]int]bool{}
	for _, p := range f.Pinned {
		key := [2]int{p.Area, p.Slot}
		assert.False(t, slots[key], "slot %v pinned twice", key)
		slots[key] = true
	}
}

func TestParseFixture_RejectsUnknownKeys(t *testing.T) {
	_, err := ParseFixture([]byte("ads:\n  - id: 1\n    colour: red\n"))
	assert.Error(t, err)
}

func TestParseFixture_Empty(t *testing.T) {
	f, err := ParseFixture(nil)
	require.NoError(t, err)
	assert.Empty(t, f.Ads)
}

func TestAdFixture_WithDefaults(t *testing.T) {
	a := AdFixture{Device: "mobile"}.WithDefaults()

	assert.Equal(t, "image", a.Kind)
	assert.Equal(t, "mobile", a.Device)
	assert.Equal(t, "all", a.Page)
	assert.Equal(t, "all", a.Category)
}
