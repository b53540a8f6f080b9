package analysis

import (
	"math"
	"testing"

	"github.com/tsawler/revisor/model"
)

func TestAverageMargins(t *testing.T) {
	sections := []model.Section{
		{Top: model.Cm(3), Bottom: model.Cm(2), Left: model.Cm(3), Right: model.Cm(2)},
		{Top: model.Cm(2), Bottom: model.Cm(2), Left: model.Cm(2.5), Right: model.Cm(2)},
		{Top: model.Cm(2.5), Bottom: model.Cm(2), Left: model.Cm(2.5), Right: model.Cm(2)},
	}

	m := AverageMargins(sections)
	if m.Sections != 3 {
		t.Errorf("Sections = %d, want 3", m.Sections)
	}

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"top", m.Top, 2.5},
		{"bottom", m.Bottom, 2},
		{"left", m.Left, 8.0 / 3},
		{"right", m.Right, 2},
	}
	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > 1e-9 {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestAverageMargins_Empty(t *testing.T) {
	for _, sections := range [][]model.Section{nil, {}} {
		m := AverageMargins(sections)
		if m != (Margins{}) {
			t.Errorf("AverageMargins(%v) = %+v, want zero", sections, m)
		}
	}
}
