package model

import (
	"math"
	"testing"
)

func TestLengthConversions(t *testing.T) {
	tests := []struct {
		name   string
		length Length
		wantCm float64
		wantPt float64
	}{
		{"one inch", EMUPerInch, 2.54, 72},
		{"twips 1440", Twips(1440), 2.54, 72},
		{"cm 2.5", Cm(2.5), 2.5, 2.5 * 72 / 2.54},
		{"pt 12", Pt(12), 12 * 2.54 / 72, 12},
		{"zero", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.length.Cm()-tt.wantCm) > 1e-9 {
				t.Errorf("Cm() = %v, want %v", tt.length.Cm(), tt.wantCm)
			}
			if math.Abs(tt.length.Pt()-tt.wantPt) > 1e-9 {
				t.Errorf("Pt() = %v, want %v", tt.length.Pt(), tt.wantPt)
			}
		})
	}
}

func TestTwipsRoundTrip(t *testing.T) {
	for _, tw := range []int64{0, 1, 709, 1134, 2268} {
		if got := Twips(tw).Twips(); got != tw {
			t.Errorf("Twips(%d).Twips() = %d", tw, got)
		}
	}
}

func TestLengthPtr(t *testing.T) {
	p := Cm(2).Ptr()
	if p == nil || *p != Cm(2) {
		t.Errorf("Ptr() = %v, want %v", p, Cm(2))
	}
}

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		val  string
		want Alignment
	}{
		{"left", AlignLeft},
		{"start", AlignLeft},
		{"center", AlignCenter},
		{"right", AlignRight},
		{"end", AlignRight},
		{"both", AlignJustified},
		{"distribute", AlignDistributed},
		{"lowKashida", AlignDistributed},
		{"", AlignUnset},
		{"bogus", AlignUnset},
	}

	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			if got := ParseAlignment(tt.val); got != tt.want {
				t.Errorf("ParseAlignment(%q) = %v, want %v", tt.val, got, tt.want)
			}
		})
	}
}

func TestAlignmentString(t *testing.T) {
	if AlignJustified.String() != "justified" {
		t.Errorf("AlignJustified.String() = %q", AlignJustified.String())
	}
	if Alignment(99).String() != "unset" {
		t.Errorf("Alignment(99).String() = %q", Alignment(99).String())
	}
}

func TestLineSpacingExceeds(t *testing.T) {
	tests := []struct {
		name    string
		spacing LineSpacing
		want    bool
	}{
		{"single", LineSpacing{Rule: RuleMultiple, Multiple: 1.0}, false},
		{"one and a half", LineSpacing{Rule: RuleMultiple, Multiple: 1.5}, true},
		{"below single", LineSpacing{Rule: RuleMultiple, Multiple: 0.9}, false},
		{"exact 12pt", LineSpacing{Rule: RuleExact, Height: Pt(12)}, true},
		{"unrecognized rule length", LineSpacing{Rule: RuleUnspecified, Height: Twips(240)}, true},
		{"zero height", LineSpacing{Rule: RuleAtLeast}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spacing.Exceeds(1.0); got != tt.want {
				t.Errorf("Exceeds(1.0) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseLineRule(t *testing.T) {
	tests := map[string]LineRule{
		"auto":    RuleMultiple,
		"exact":   RuleExact,
		"atLeast": RuleAtLeast,
		"":        RuleMultiple,
		"bogus":   RuleUnspecified,
	}
	for val, want := range tests {
		if got := ParseLineRule(val); got != want {
			t.Errorf("ParseLineRule(%q) = %v, want %v", val, got, want)
		}
	}
}

func TestDocumentAdd(t *testing.T) {
	doc := NewDocument()
	doc.AddParagraph(Paragraph{Text: "first"})
	doc.AddParagraph(Paragraph{Text: "second"})
	doc.AddSection(Section{Top: Cm(2)})

	if len(doc.Paragraphs) != 2 {
		t.Fatalf("len(Paragraphs) = %d, want 2", len(doc.Paragraphs))
	}
	if len(doc.Sections) != 1 {
		t.Fatalf("len(Sections) = %d, want 1", len(doc.Sections))
	}
	if got := doc.ExtractText(); got != "first\nsecond" {
		t.Errorf("ExtractText() = %q", got)
	}
}
