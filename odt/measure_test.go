package odt

import (
	"testing"

	"github.com/tsawler/revisor/model"
)

func TestParseLength(t *testing.T) {
	tests := []struct {
		in     string
		want   model.Length
		wantOK bool
	}{
		{"2.5cm", model.Cm(2.5), true},
		{"10mm", model.Cm(1), true},
		{"1in", model.EMUPerInch, true},
		{"1inch", model.EMUPerInch, true},
		{"12pt", model.Pt(12), true},
		{"1pc", model.Pt(12), true},
		{"96px", model.EMUPerInch, true},
		{" 3CM ", model.Cm(3), true},
		{"-0.5cm", model.Cm(-0.5), true},
		{"", 0, false},
		{"120%", 0, false},
		{"cm", 0, false},
		{"12furlong", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseLength(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("parseLength(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseAlignment(t *testing.T) {
	tests := map[string]model.Alignment{
		"start":   model.AlignLeft,
		"left":    model.AlignLeft,
		"end":     model.AlignRight,
		"right":   model.AlignRight,
		"center":  model.AlignCenter,
		"justify": model.AlignJustified,
		"":        model.AlignUnset,
		"inherit": model.AlignUnset,
	}
	for in, want := range tests {
		if got := parseAlignment(in); got != want {
			t.Errorf("parseAlignment(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseLineSpacing(t *testing.T) {
	tests := []struct {
		name string
		ppr  *paragraphPropsXML
		want *model.LineSpacing
	}{
		{"nil", nil, nil},
		{"unset", &paragraphPropsXML{}, nil},
		{"normal", &paragraphPropsXML{LineHeight: "normal"}, &model.LineSpacing{Rule: model.RuleMultiple, Multiple: 1}},
		{"percent", &paragraphPropsXML{LineHeight: "200%"}, &model.LineSpacing{Rule: model.RuleMultiple, Multiple: 2}},
		{"exact", &paragraphPropsXML{LineHeight: "0.5cm"}, &model.LineSpacing{Rule: model.RuleExact, Height: model.Cm(0.5)}},
		{"at least", &paragraphPropsXML{LineHeightAtLeast: "12pt"}, &model.LineSpacing{Rule: model.RuleAtLeast, Height: model.Pt(12)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseLineSpacing(tt.ppr)
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("got %+v, want nil", *got)
			case tt.want != nil && (got == nil || *got != *tt.want):
				t.Errorf("got %+v, want %+v", got, *tt.want)
			}
		})
	}
}

func TestParseFontSize(t *testing.T) {
	if got := parseFontSize("11pt"); got == nil || *got != model.Pt(11) {
		t.Errorf("parseFontSize(11pt) = %v", got)
	}
	for _, in := range []string{"", "120%", "0pt"} {
		if got := parseFontSize(in); got != nil {
			t.Errorf("parseFontSize(%q) = %v, want nil", in, *got)
		}
	}
}

func TestParseSection(t *testing.T) {
	got := parseSection(pagePropsXML{Margin: "2cm", MarginTop: "3cm"})
	want := model.Section{Top: model.Cm(3), Bottom: model.Cm(2), Left: model.Cm(2), Right: model.Cm(2)}
	if got != want {
		t.Errorf("parseSection() = %+v, want %+v", got, want)
	}

	if got := parseSection(pagePropsXML{}); got != (model.Section{}) {
		t.Errorf("parseSection(empty) = %+v, want zero", got)
	}
}

func TestCleanFontFamily(t *testing.T) {
	tests := map[string]string{
		"Arial":                       "Arial",
		"'Times New Roman'":           "Times New Roman",
		`"DejaVu Sans", sans-serif`:   "DejaVu Sans",
		" 'Liberation Serif' , serif": "Liberation Serif",
		"":                            "",
	}
	for in, want := range tests {
		if got := cleanFontFamily(in); got != want {
			t.Errorf("cleanFontFamily(%q) = %q, want %q", in, got, want)
		}
	}
}
