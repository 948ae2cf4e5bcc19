package metadata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"auctionscan/pkg/history"
)

// topOwnerLimit caps how many sellers a summary names.
const topOwnerLimit = 5

// ScanSummary represents the derived statistics for one completed scan
type ScanSummary struct {
	// Core identifiers
	ScanID      string        `json:"scan_id"`
	CompletedAt time.Time     `json:"completed_at"`
	Elapsed     time.Duration `json:"elapsed"`

	// Volume
	ItemCount   int `json:"item_count"`
	UniqueNames int `json:"unique_names"`
	UsableCount int `json:"usable_count"`

	// Quality distribution, keyed by tier name
	QualityCounts map[string]int `json:"quality_counts,omitempty"`

	// Buyout pricing in copper; listings without a buyout are excluded
	BuyoutListings int `json:"buyout_listings"`
	MinBuyout      int `json:"min_buyout,omitempty"`
	MaxBuyout      int `json:"max_buyout,omitempty"`
	AvgBuyout      int `json:"avg_buyout,omitempty"`

	// Most active sellers, descending by listing count
	TopOwners []OwnerCount `json:"top_owners,omitempty"`
}

// OwnerCount is one seller and how many listings they hold
type OwnerCount struct {
	Owner string `json:"owner"`
	Count int    `json:"count"`
}

// FromEntry derives the summary statistics from a completed scan
func FromEntry(entry history.Entry) *ScanSummary {
	s := &ScanSummary{
		ScanID:        entry.ID,
		CompletedAt:   entry.CompletedAt,
		Elapsed:       entry.Elapsed,
		ItemCount:     entry.ItemCount,
		QualityCounts: make(map[string]int),
	}

	names := make(map[string]struct{})
	owners := make(map[string]int)
	totalBuyout := 0

	for _, l := range entry.Listings {
		names[l.Name] = struct{}{}
		s.QualityCounts[l.Quality.String()]++

		if l.Usable {
			s.UsableCount++
		}
		if l.Owner != "" {
			owners[l.Owner]++
		}

		if l.HasBuyout() {
			if s.BuyoutListings == 0 || l.Buyout < s.MinBuyout {
				s.MinBuyout = l.Buyout
			}
			if l.Buyout > s.MaxBuyout {
				s.MaxBuyout = l.Buyout
			}
			totalBuyout += l.Buyout
			s.BuyoutListings++
		}
	}

	s.UniqueNames = len(names)
	if s.BuyoutListings > 0 {
		s.AvgBuyout = totalBuyout / s.BuyoutListings
	}
	if len(s.QualityCounts) == 0 {
		s.QualityCounts = nil
	}
	s.TopOwners = topOwners(owners, topOwnerLimit)

	return s
}

// topOwners ranks sellers by listing count, ties broken by name
func topOwners(owners map[string]int, limit int) []OwnerCount {
	if len(owners) == 0 {
		return nil
	}

	ranked := make([]OwnerCount, 0, len(owners))
	for owner, count := range owners {
		ranked = append(ranked, OwnerCount{Owner: owner, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Owner < ranked[j].Owner
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// SidecarPath returns the summary file path for an export file
func SidecarPath(exportPath string) string {
	return strings.TrimSuffix(exportPath, filepath.Ext(exportPath)) + ".meta.json"
}

// Save writes the summary to the export's sidecar file
func (s *ScanSummary) Save(exportPath string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}

	if err := os.WriteFile(SidecarPath(exportPath), data, 0644); err != nil {
		return fmt.Errorf("failed to write summary file: %w", err)
	}

	return nil
}

// Load reads the summary from an export's sidecar file
func Load(exportPath string) (*ScanSummary, error) {
	data, err := os.ReadFile(SidecarPath(exportPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read summary file: %w", err)
	}

	var s ScanSummary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary: %w", err)
	}

	return &s, nil
}

// SummaryExists checks if a summary sidecar exists for an export
func SummaryExists(exportPath string) bool {
	_, err := os.Stat(SidecarPath(exportPath))
	return err == nil
}

// CleanOrphanedSummaries removes sidecar files whose export is gone
func CleanOrphanedSummaries(directory string) error {
	return filepath.Walk(directory, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !strings.HasSuffix(path, ".meta.json") {
			return nil
		}

		exportPath := strings.TrimSuffix(path, ".meta.json") + ".json"
		if _, err := os.Stat(exportPath); os.IsNotExist(err) {
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to remove orphaned summary %s: %w", path, err)
			}
		}

		return nil
	})
}

// FormatCopper renders a copper amount as gold/silver/copper, omitting
// leading zero units
func FormatCopper(c int) string {
	if c < 0 {
		c = 0
	}

	gold := c / 10000
	silver := (c % 10000) / 100
	copper := c % 100

	switch {
	case gold > 0:
		return fmt.Sprintf("%sg %ds %dc", humanize.Comma(int64(gold)), silver, copper)
	case silver > 0:
		return fmt.Sprintf("%ds %dc", silver, copper)
	default:
		return fmt.Sprintf("%dc", copper)
	}
}

// Describe returns a one-line rendering for chat-style output
func (s *ScanSummary) Describe() string {
	line := fmt.Sprintf("%s items in %s", humanize.Comma(int64(s.ItemCount)), s.Elapsed.Round(time.Second))
	if s.UsableCount > 0 {
		line += fmt.Sprintf(", %d usable", s.UsableCount)
	}
	if s.BuyoutListings > 0 {
		line += fmt.Sprintf(", cheapest buyout %s", FormatCopper(s.MinBuyout))
	}
	return line
}

// Render returns a multi-line rendering for terminal output
func (s *ScanSummary) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Scan %s\n", s.ScanID)
	fmt.Fprintf(&b, "  Items: %s (%d unique, %d usable) in %s\n",
		humanize.Comma(int64(s.ItemCount)), s.UniqueNames, s.UsableCount, s.Elapsed.Round(time.Second))

	if len(s.QualityCounts) > 0 {
		tiers := make([]string, 0, len(s.QualityCounts))
		for tier := range s.QualityCounts {
			tiers = append(tiers, tier)
		}
		sort.Strings(tiers)

		parts := make([]string, 0, len(tiers))
		for _, tier := range tiers {
			parts = append(parts, fmt.Sprintf("%s %d", tier, s.QualityCounts[tier]))
		}
		fmt.Fprintf(&b, "  Qualities: %s\n", strings.Join(parts, ", "))
	}

	if s.BuyoutListings > 0 {
		fmt.Fprintf(&b, "  Buyouts: %d listings, %s to %s (avg %s)\n",
			s.BuyoutListings, FormatCopper(s.MinBuyout), FormatCopper(s.MaxBuyout), FormatCopper(s.AvgBuyout))
	}

	if len(s.TopOwners) > 0 {
		parts := make([]string, 0, len(s.TopOwners))
		for _, oc := range s.TopOwners {
			parts = append(parts, fmt.Sprintf("%s (%d)", oc.Owner, oc.Count))
		}
		fmt.Fprintf(&b, "  Top sellers: %s\n", strings.Join(parts, ", "))
	}

	return b.String()
}
