package auction

// IconPosition is the persisted placement of the scanner's venue icon.
// It is peripheral to scanning and exists as the second user of the
// key-value persistence pattern the history store relies on.
type IconPosition struct {
	Anchor string  `json:"anchor"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// IconPositionKey is the persistence key for the icon position
const IconPositionKey = "icon_position"

// DefaultIconPosition returns the placement used before the user moves
// the icon
func DefaultIconPosition() IconPosition {
	return IconPosition{Anchor: "TOPLEFT", X: 40, Y: -40}
}
