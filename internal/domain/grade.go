package domain

// GradeLevel is one of seven ordered reading-level bands spanning
// kindergarten through advanced.
type GradeLevel string

const (
	// GradeUnknown is the zero value: no grade has been inferred yet.
	GradeUnknown GradeLevel = ""

	GradeK1     GradeLevel = "K-1"
	Grade23     GradeLevel = "2-3"
	Grade45     GradeLevel = "4-5"
	Grade67     GradeLevel = "6-7"
	Grade89     GradeLevel = "8-9"
	Grade1011   GradeLevel = "10-11"
	Grade12Plus GradeLevel = "12+"
)

// gradeOrder lists the bands from lowest to highest.
var gradeOrder = []GradeLevel{
	GradeK1, Grade23, Grade45, Grade67, Grade89, Grade1011, Grade12Plus,
}

// gradeRanges maps each band to its difficulty score range [min, max].
var gradeRanges = map[GradeLevel][2]int{
	GradeK1:     {5, 15},
	Grade23:     {15, 25},
	Grade45:     {25, 35},
	Grade67:     {35, 45},
	Grade89:     {45, 55},
	Grade1011:   {55, 65},
	Grade12Plus: {65, 75},
}

func (g GradeLevel) String() string { return string(g) }

func (g GradeLevel) IsValid() bool {
	_, ok := gradeRanges[g]
	return ok
}

// index returns the band's position in gradeOrder, or -1 if unknown.
func (g GradeLevel) index() int {
	for i, grade := range gradeOrder {
		if grade == g {
			return i
		}
	}
	return -1
}

// DifficultyRange returns the difficulty score range [min, max] for the band.
// Unknown bands default to the 4-5 range.
func (g GradeLevel) DifficultyRange() (min, max int) {
	r, ok := gradeRanges[g]
	if !ok {
		r = gradeRanges[Grade45]
	}
	return r[0], r[1]
}

// NextLevels returns the next one or two bands above the current one,
// for targeting the zone of proximal development. The top band returns
// itself so it always has at least one target.
// An unknown band defaults to the 4-5 and 6-7 targets.
func (g GradeLevel) NextLevels() []GradeLevel {
	i := g.index()
	if i < 0 {
		return []GradeLevel{Grade45, Grade67}
	}

	var next []GradeLevel
	if i+1 < len(gradeOrder) {
		next = append(next, gradeOrder[i+1])
	}
	if i+2 < len(gradeOrder) {
		next = append(next, gradeOrder[i+2])
	}
	if len(next) == 0 {
		next = []GradeLevel{g}
	}
	return next
}

// GradeForDifficulty maps a representative difficulty score to a band.
func GradeForDifficulty(difficulty float64) GradeLevel {
	switch {
	case difficulty < 15:
		return GradeK1
	case difficulty < 25:
		return Grade23
	case difficulty < 35:
		return Grade45
	case difficulty < 45:
		return Grade67
	case difficulty < 55:
		return Grade89
	case difficulty < 65:
		return Grade1011
	default:
		return Grade12Plus
	}
}
