package simulator

import (
	"math/rand"
	"strings"

	"auctionscan/pkg/auction"
)

var itemBases = []string{
	"Linen Cloth", "Wool Cloth", "Mageweave Cloth", "Runecloth",
	"Copper Bar", "Iron Bar", "Mithril Bar", "Thorium Bar", "Arcanite Bar",
	"Light Leather", "Heavy Leather", "Thick Leather", "Rugged Leather",
	"Peacebloom", "Silverleaf", "Mageroyal", "Sungrass", "Dreamfoil",
	"Minor Healing Potion", "Healing Potion", "Greater Mana Potion",
	"Solid Stone", "Dense Stone", "Coarse Grinding Stone",
	"Krol Blade", "Ironwood Maul", "Deadly Blunderbuss", "Staff of Jordan",
	"Gloves of Meditation", "Robe of Power", "Tigerseye", "Shadowgem",
}

var sellerNames = []string{
	"Keldran", "Mirelle", "Thorgar", "Vexa", "Aldwin",
	"Serenna", "Brakkis", "Lunara", "Dorin", "Hesta",
	"Morwen", "Galrik", "Ysolde", "Fenwick", "Tazira",
}

var stackSizes = []int{1, 5, 10, 20}

// generateItems builds a deterministic listing population from the
// seed. Every generated entry is complete; the venue withholds owners
// during warm-up at serving time, not here.
func generateItems(n int, seed int64) []auction.RawEntry {
	if n <= 0 {
		return nil
	}

	rng := rand.New(rand.NewSource(seed))
	items := make([]auction.RawEntry, n)

	for i := range items {
		base := itemBases[rng.Intn(len(itemBases))]
		quality := rollQuality(rng)

		minBid := rollPrice(rng, quality)
		buyout := 0
		if rng.Float64() < 0.85 {
			buyout = minBid + minBid*rng.Intn(50)/100
		}

		currentBid := 0
		if rng.Float64() < 0.3 {
			currentBid = minBid + rng.Intn(minBid+1)/2
		}

		items[i] = auction.RawEntry{
			Name:          base,
			Texture:       textureFor(base),
			StackCount:    stackSizes[rng.Intn(len(stackSizes))],
			Quality:       quality,
			Usable:        rng.Float64() < 0.7,
			RequiredLevel: 1 + rng.Intn(60),
			MinBid:        minBid,
			Buyout:        buyout,
			CurrentBid:    currentBid,
			Owner:         sellerNames[rng.Intn(len(sellerNames))],
		}
	}

	return items
}

// rollQuality draws a quality tier with common tiers dominating.
func rollQuality(rng *rand.Rand) auction.Quality {
	roll := rng.Float64()
	switch {
	case roll < 0.08:
		return auction.QualityPoor
	case roll < 0.50:
		return auction.QualityCommon
	case roll < 0.80:
		return auction.QualityUncommon
	case roll < 0.95:
		return auction.QualityRare
	case roll < 0.99:
		return auction.QualityEpic
	default:
		return auction.QualityLegendary
	}
}

// rollPrice draws a minimum bid in copper, scaled by quality.
func rollPrice(rng *rand.Rand, quality auction.Quality) int {
	base := 50 + rng.Intn(20000)
	multiplier := 1 + int(quality)*int(quality)*3
	return base * multiplier
}

func textureFor(base string) string {
	return "inv_" + strings.ReplaceAll(strings.ToLower(base), " ", "_")
}
