package auction

import "time"

// Quality is the listing quality tier
type Quality int

const (
	QualityPoor Quality = iota
	QualityCommon
	QualityUncommon
	QualityRare
	QualityEpic
	QualityLegendary
)

// String returns the display name of the quality tier
func (q Quality) String() string {
	switch q {
	case QualityPoor:
		return "Poor"
	case QualityCommon:
		return "Common"
	case QualityUncommon:
		return "Uncommon"
	case QualityRare:
		return "Rare"
	case QualityEpic:
		return "Epic"
	case QualityLegendary:
		return "Legendary"
	default:
		return "Unknown"
	}
}

// Listing is one ingested auction house item. Immutable once created.
// All prices are in currency minor units (copper).
type Listing struct {
	Name          string    `json:"name"`
	Texture       string    `json:"texture"`
	StackCount    int       `json:"stack_count"`
	Quality       Quality   `json:"quality"`
	Usable        bool      `json:"usable"`
	RequiredLevel int       `json:"required_level"`
	MinBid        int       `json:"min_bid"`
	Buyout        int       `json:"buyout"` // 0 means no buyout
	CurrentBid    int       `json:"current_bid"`
	Owner         string    `json:"owner"`
	CapturedAt    time.Time `json:"captured_at"`
}

// HasBuyout reports whether the listing can be bought out directly
func (l Listing) HasBuyout() bool {
	return l.Buyout > 0
}

// RawEntry is the buffer shape the venue exposes per index, before
// validation. Name and Owner may still be absent while the page loads;
// an entry without an owner marks the whole batch as incomplete.
type RawEntry struct {
	Name          string
	Texture       string
	StackCount    int
	Quality       Quality
	Usable        bool
	RequiredLevel int
	MinBid        int
	Buyout        int
	CurrentBid    int
	Owner         string
}

// HasOwner reports whether the entry's owner has materialized
func (e RawEntry) HasOwner() bool {
	return e.Owner != ""
}

// NewListing converts a complete raw entry into an immutable Listing,
// stamping the capture time
func NewListing(e RawEntry, capturedAt time.Time) Listing {
	return Listing{
		Name:          e.Name,
		Texture:       e.Texture,
		StackCount:    e.StackCount,
		Quality:       e.Quality,
		Usable:        e.Usable,
		RequiredLevel: e.RequiredLevel,
		MinBid:        e.MinBid,
		Buyout:        e.Buyout,
		CurrentBid:    e.CurrentBid,
		Owner:         e.Owner,
		CapturedAt:    capturedAt,
	}
}
