package recommend

// Weights control how candidate scores combine. The personalization
// factor weights should sum to 1, as should Relevance plus
// Personalization.
type Weights struct {
	Relevance       float64
	Personalization float64

	GapFit       float64
	Utility      float64
	POSDiversity float64
	Thematic     float64
	Growth       float64
}

// DefaultWeights returns the standard scoring mix: personalization
// outweighs raw band fit, and within personalization the gap-fit and
// utility signals dominate.
func DefaultWeights() Weights {
	return Weights{
		Relevance:       0.4,
		Personalization: 0.6,

		GapFit:       0.30,
		Utility:      0.25,
		POSDiversity: 0.20,
		Thematic:     0.15,
		Growth:       0.10,
	}
}
