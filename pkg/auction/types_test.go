package auction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQualityString(t *testing.T) {
	tests := []struct {
		quality Quality
		want    string
	}{
		{QualityPoor, "Poor"},
		{QualityCommon, "Common"},
		{QualityUncommon, "Uncommon"},
		{QualityRare, "Rare"},
		{QualityEpic, "Epic"},
		{QualityLegendary, "Legendary"},
		{Quality(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.quality.String())
		})
	}
}

func TestNewListing(t *testing.T) {
	capturedAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	raw := RawEntry{
		Name:          "Arcanite Bar",
		Texture:       "interface/icons/inv_misc_stonetablet_05",
		StackCount:    20,
		Quality:       QualityUncommon,
		Usable:        true,
		RequiredLevel: 45,
		MinBid:        150000,
		Buyout:        180000,
		CurrentBid:    152500,
		Owner:         "Thermaplugg",
	}

	listing := NewListing(raw, capturedAt)

	assert.Equal(t, "Arcanite Bar", listing.Name)
	assert.Equal(t, 20, listing.StackCount)
	assert.Equal(t, QualityUncommon, listing.Quality)
	assert.True(t, listing.Usable)
	assert.Equal(t, 45, listing.RequiredLevel)
	assert.Equal(t, 150000, listing.MinBid)
	assert.Equal(t, 180000, listing.Buyout)
	assert.Equal(t, 152500, listing.CurrentBid)
	assert.Equal(t, "Thermaplugg", listing.Owner)
	assert.Equal(t, capturedAt, listing.CapturedAt)
	assert.True(t, listing.HasBuyout())
}

func TestListingWithoutBuyout(t *testing.T) {
	listing := NewListing(RawEntry{Name: "Copper Ore", Owner: "Grubbs"}, time.Now())
	assert.False(t, listing.HasBuyout())
}

func TestRawEntryHasOwner(t *testing.T) {
	assert.False(t, RawEntry{Name: "Iron Bar"}.HasOwner())
	assert.True(t, RawEntry{Name: "Iron Bar", Owner: "Doran"}.HasOwner())
}

func TestDefaultIconPosition(t *testing.T) {
	pos := DefaultIconPosition()
	assert.Equal(t, "TOPLEFT", pos.Anchor)
	assert.NotZero(t, pos.X)
	assert.NotZero(t, pos.Y)
}
