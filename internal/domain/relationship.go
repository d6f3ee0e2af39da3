package domain

// RelationshipLevel is one of the fixed tiers a relationship percentage maps
// into. Tiers are ordered by ascending UpperBound.
type RelationshipLevel struct {
	Title       string
	Description string
	ThumbnailID uint64
	Color       int
	UpperBound  float64
}

var RelationshipLevels = []RelationshipLevel{
	{
		Title:       "[ Strangers in the Night ]",
		Description: "Casual, brief encounter, no real connection.",
		ThumbnailID: 1323549313430851594,
		Color:       0xD3D3D3,
		UpperBound:  20,
	},
	{
		Title:       "[ Social Snackers ]",
		Description: "Friendly, light connection, often in social settings.",
		ThumbnailID: 1323551714887991296,
		Color:       0xF1E2A7,
		UpperBound:  50,
	},
	{
		Title:       "[ Besties ]",
		Description: "Solid friends, trust and fun, but not yet deeply emotional.",
		ThumbnailID: 1323551637075398700,
		Color:       0x5D9BEC,
		UpperBound:  75,
	},
	{
		Title:       "[ Partners in Crime ]",
		Description: "Strong bond, loyal and inseparable, lots of shared experiences.",
		ThumbnailID: 1323547947601891370,
		Color:       0xFF6F61,
		UpperBound:  90,
	},
	{
		Title:       "[ Soulmates Forever ]",
		Description: "Deep connection, unspoken understanding, and long-term commitment.",
		ThumbnailID: 1323550264824827924,
		Color:       0x9B4D96,
		UpperBound:  100,
	},
}

// LevelFor selects the first tier whose upper bound covers percent.
// Percent must lie in [0, 100).
func LevelFor(percent float64) RelationshipLevel {
	for _, lvl := range RelationshipLevels {
		if percent <= lvl.UpperBound {
			return lvl
		}
	}
	return RelationshipLevels[len(RelationshipLevels)-1]
}
