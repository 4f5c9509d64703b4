package domain

import "testing"

func TestGradeForDifficulty(t *testing.T) {
	tests := []struct {
		difficulty float64
		want       GradeLevel
	}{
		{0, GradeK1},
		{14.9, GradeK1},
		{15, Grade23},
		{24.9, Grade23},
		{25, Grade45},
		{44, Grade67},
		{50, Grade89},
		{60, Grade1011},
		{65, Grade12Plus},
		{100, Grade12Plus},
	}
	for _, tt := range tests {
		if got := GradeForDifficulty(tt.difficulty); got != tt.want {
			t.Errorf("GradeForDifficulty(%v) = %s, want %s", tt.difficulty, got, tt.want)
		}
	}
}

func TestNextLevels(t *testing.T) {
	tests := []struct {
		grade GradeLevel
		want  []GradeLevel
	}{
		{GradeK1, []GradeLevel{Grade23, Grade45}},
		{Grade23, []GradeLevel{Grade45, Grade67}},
		{Grade89, []GradeLevel{Grade1011, Grade12Plus}},
		{Grade1011, []GradeLevel{Grade12Plus}},
		{Grade12Plus, []GradeLevel{Grade12Plus}},
		{GradeUnknown, []GradeLevel{Grade45, Grade67}},
	}
	for _, tt := range tests {
		got := tt.grade.NextLevels()
		if len(got) != len(tt.want) {
			t.Errorf("%s.NextLevels() = %v, want %v", tt.grade, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s.NextLevels()[%d] = %s, want %s", tt.grade, i, got[i], tt.want[i])
			}
		}
	}
}

func TestDifficultyRange(t *testing.T) {
	if min, max := Grade23.DifficultyRange(); min != 15 || max != 25 {
		t.Errorf("Grade23 range = [%d, %d], want [15, 25]", min, max)
	}
	if min, max := GradeUnknown.DifficultyRange(); min != 25 || max != 35 {
		t.Errorf("unknown grade range = [%d, %d], want the 4-5 default", min, max)
	}
}

func TestNormalizeWord(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Hello  ", "hello"},
		{"DRAGON", "dragon"},
		{"ice   cream", "ice cream"},
		{"don't", "don't"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeWord(tt.in); got != tt.want {
			t.Errorf("NormalizeWord(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
