package strength

import (
	"testing"

	"github.com/verte-zerg/passtui/internal/model"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		password string
		score    int
		label    model.Strength
	}{
		{"", 0, model.Weak},
		{"abcdefgh", 1, model.Weak},
		{"Ab3!defghij", 4, model.Medium},
		{"Ab3!defghijk", 5, model.Strong},
		{"abcdefghijabcdefghijabcdefghij", 2, model.Weak},
		{"ABCDEF123456", 3, model.Medium},
		{"!!!!!!!!", 1, model.Weak},
	}
	for _, tc := range cases {
		if got := Score(tc.password); got != tc.score {
			t.Fatalf("%q: expected score %d, got %d", tc.password, tc.score, got)
		}
		if got := Classify(tc.password); got != tc.label {
			t.Fatalf("%q: expected %s, got %s", tc.password, tc.label, got)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	first := Classify("Ab3!defghij")
	for i := 0; i < 10; i++ {
		if got := Classify("Ab3!defghij"); got != first {
			t.Fatalf("expected stable label, got %s then %s", first, got)
		}
	}
}
