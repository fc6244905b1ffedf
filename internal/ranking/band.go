package ranking

// Band is the badge colour a match score is displayed with
type Band string

// Match score bands
const (
	BandGreen   Band = "green"
	BandAmber   Band = "amber"
	BandNeutral Band = "neutral"
	BandGrey    Band = "grey"
)

// BandFor maps a match score to its badge band.
func BandFor(score int) Band {
	switch {
	case score >= 80:
		return BandGreen
	case score >= 60:
		return BandAmber
	case score >= 40:
		return BandNeutral
	default:
		return BandGrey
	}
}
