package difficulty

// FrequencyBucket maps a minimum corpus frequency to a difficulty
// score. Buckets are checked in order; the first match wins.
type FrequencyBucket struct {
	MinFrequency int
	Score        int
}

// Params is the full threshold table for the scoring policy. Keeping
// every cutoff here makes the policy data, not code, and independently
// testable with synthetic values.
type Params struct {
	// GradeScaleMax is the top of the grade-difficulty reference scale;
	// grade scores are normalized linearly onto 0-100 against it.
	GradeScaleMax int

	// FrequencyBuckets must be ordered by MinFrequency descending.
	FrequencyBuckets []FrequencyBucket
	RareWordScore    int

	// Structural heuristic knobs.
	StructuralBase       int
	LongWordLength       int // strictly longer than this gets LongWordBonus
	LongWordBonus        int
	MediumWordLength     int // at least this long gets MediumWordBonus
	MediumWordBonus      int
	UncommonPatterns     []string
	UncommonPatternBonus int
}

// DefaultParams returns the standard scoring policy.
func DefaultParams() Params {
	return Params{
		GradeScaleMax: 1600,

		FrequencyBuckets: []FrequencyBucket{
			{MinFrequency: 10000, Score: 10},
			{MinFrequency: 1000, Score: 30},
			{MinFrequency: 100, Score: 50},
			{MinFrequency: 10, Score: 70},
		},
		RareWordScore: 90,

		StructuralBase:       50,
		LongWordLength:       10,
		LongWordBonus:        20,
		MediumWordLength:     8,
		MediumWordBonus:      10,
		UncommonPatterns:     []string{"x", "z", "q", "ph", "th", "ch", "sh"},
		UncommonPatternBonus: 5,
	}
}
