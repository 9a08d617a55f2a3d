package leven

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asylumcs/fadw/dict"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"house", "horse", 1},
		{"same", "same", 0},
		{"naïve", "naive", 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Levenshtein([]rune(tt.a), []rune(tt.b)), "%s/%s", tt.a, tt.b)
	}
}

func TestNear(t *testing.T) {
	wd := dict.New("horse", "house", "houses", "mouse", "hose", "elephant")
	assert.Equal(t, []string{"horse", "hose", "house"}, Near(wd, "hoase"))

	// "mouse" + "s" is an apparent plural, not a suggestion
	assert.Equal(t, []string{"houses"}, Near(wd, "mouses"))

	// too short to get suggestions
	assert.Empty(t, Near(wd, "hoze"))
}

func TestLevencheck(t *testing.T) {
	wd := dict.New("horse", "house", "hose")
	assert.Equal(t, []string{
		"",
		"Suggestions (edit distance 1)",
		"  hoase: horse",
		"  hoase: hose",
		"  hoase: house",
	}, Levencheck(wd, []string{"hoase", "xy"}))

	assert.Equal(t, []string{"", "Suggestions (edit distance 1)", "  none"}, Levencheck(wd, []string{"zebra"}))
}
