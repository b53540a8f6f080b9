package analysis

import (
	"testing"

	"github.com/tsawler/revisor/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		align model.Alignment
		want  string
	}{
		{model.AlignLeft, LabelLeft},
		{model.AlignRight, LabelRight},
		{model.AlignCenter, LabelCenter},
		{model.AlignJustified, LabelJustified},
		{model.AlignUnset, LabelLeft},
		{model.AlignDistributed, LabelLeft},
		{model.Alignment(42), LabelLeft},
	}

	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			if got := Classify(tt.align); got != tt.want {
				t.Errorf("Classify(%v) = %q, want %q", tt.align, got, tt.want)
			}
		})
	}
}

func TestClassify_NeverUnknown(t *testing.T) {
	for a := model.AlignUnset; a <= model.AlignDistributed+1; a++ {
		if Classify(a) == LabelUnknown {
			t.Errorf("Classify(%v) returned %q", a, LabelUnknown)
		}
	}
}
