package analysis

import "github.com/san-kum/radsim/internal/catalog"

// Rating classifies a surface by its solar-absorptivity to IR-emissivity
// ratio. Low ratios run cold in sunlight.
type Rating int

const (
	RatingNeutral Rating = iota
	RatingExcellent
	RatingHot
)

const (
	ExcellentBelow = 0.3
	HotAbove       = 0.7
)

func Rate(ratio float64) Rating {
	switch {
	case ratio < ExcellentBelow:
		return RatingExcellent
	case ratio > HotAbove:
		return RatingHot
	default:
		return RatingNeutral
	}
}

func RateMaterial(m catalog.Material) Rating { return Rate(m.Ratio()) }

func (r Rating) String() string {
	switch r {
	case RatingExcellent:
		return "excellent cooling"
	case RatingHot:
		return "gets hot in sunlight"
	default:
		return "moderate"
	}
}
