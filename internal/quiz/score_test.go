package quiz_test

import (
	"testing"

	"github.com/cloudprep/ccpquiz/internal/quiz"
)

func TestRawToScaled(t *testing.T) {
	cases := []struct {
		raw, attempted, want int
	}{
		{0, 50, 100},
		{50, 50, 1000},
		{35, 50, 730},
		{12, 20, 640},
		{0, 0, 100}, // nothing attempted scores the floor
		{1, 3, 400},
	}
	for _, c := range cases {
		if got := quiz.RawToScaled(c.raw, c.attempted); got != c.want {
			t.Errorf("RawToScaled(%d, %d) = %d, want %d", c.raw, c.attempted, got, c.want)
		}
	}
}

func TestPassed(t *testing.T) {
	if !quiz.Passed(700) {
		t.Error("700 must pass")
	}
	if !quiz.Passed(730) {
		t.Error("730 must pass")
	}
	if quiz.Passed(699) {
		t.Error("699 must fail")
	}
	if quiz.Passed(640) {
		t.Error("640 must fail")
	}
}
