package docx

import (
	"testing"

	"github.com/tsawler/revisor/model"
)

func TestNewStyleResolver_Nil(t *testing.T) {
	sr := NewStyleResolver(nil)
	if sr == nil {
		t.Fatal("NewStyleResolver(nil) returned nil")
	}

	style := sr.Resolve("")
	if style.FontName != "" {
		t.Errorf("FontName = %q, want empty", style.FontName)
	}
	if style.FontSize != nil {
		t.Errorf("FontSize = %v, want nil", *style.FontSize)
	}
	if style.Alignment != model.AlignUnset {
		t.Errorf("Alignment = %v, want unset", style.Alignment)
	}
}

func TestStyleResolver_Inheritance(t *testing.T) {
	styles := &stylesXML{
		DocDefaults: docDefaultsXML{
			RPrDefault: rPrDefaultXML{RPr: runPropsXML{
				Font:     fontXML{ASCII: "Calibri"},
				FontSize: sizeXML{Val: "22"},
			}},
		},
		Styles: []styleDefXML{
			{
				StyleID: "Base",
				Type:    "paragraph",
				Name:    styleRefXML{Val: "Base"},
				PPr:     paragraphPropsXML{Justification: justificationXML{Val: "right"}},
				RPr:     runPropsXML{Font: fontXML{ASCII: "Arial"}},
			},
			{
				StyleID: "Derived",
				Type:    "paragraph",
				Name:    styleRefXML{Val: "Derived"},
				BasedOn: styleRefXML{Val: "Base"},
				PPr:     paragraphPropsXML{Spacing: spacingXML{Line: "480", LineRule: "auto"}},
				RPr:     runPropsXML{FontSize: sizeXML{Val: "32"}},
			},
		},
	}

	sr := NewStyleResolver(styles)
	style := sr.Resolve("Derived")

	if style.Name != "Derived" {
		t.Errorf("Name = %q, want Derived", style.Name)
	}
	if style.Alignment != model.AlignRight {
		t.Errorf("Alignment = %v, want right (inherited)", style.Alignment)
	}
	if style.FontName != "Arial" {
		t.Errorf("FontName = %q, want Arial (inherited)", style.FontName)
	}
	if style.FontSize == nil || style.FontSize.Pt() != 16 {
		t.Errorf("FontSize = %v, want 16pt", style.FontSize)
	}
	if style.LineSpacing == nil || style.LineSpacing.Multiple != 2 {
		t.Errorf("LineSpacing = %+v, want 2.0 multiple", style.LineSpacing)
	}

	// Cached result is the same value
	if sr.Resolve("Derived") != style {
		t.Error("Resolve should return the cached style")
	}
}

func TestStyleResolver_CircularBasedOn(t *testing.T) {
	styles := &stylesXML{
		Styles: []styleDefXML{
			{StyleID: "A", BasedOn: styleRefXML{Val: "B"}, RPr: runPropsXML{Font: fontXML{ASCII: "FontA"}}},
			{StyleID: "B", BasedOn: styleRefXML{Val: "A"}, RPr: runPropsXML{Font: fontXML{ASCII: "FontB"}}},
		},
	}

	sr := NewStyleResolver(styles)
	style := sr.Resolve("A")
	if style.FontName != "FontA" {
		t.Errorf("FontName = %q, want FontA", style.FontName)
	}
}

func TestStyleResolver_ResolveParagraphKeepsDirect(t *testing.T) {
	styles := &stylesXML{
		Styles: []styleDefXML{
			{StyleID: "Body", PPr: paragraphPropsXML{
				Justification: justificationXML{Val: "both"},
				Indent:        indentXML{Left: "720"},
			}},
		},
	}
	sr := NewStyleResolver(styles)

	direct := model.Twips(2268)
	p := model.Paragraph{StyleID: "Body", Alignment: model.AlignCenter, LeftIndent: &direct}
	sr.ResolveParagraph(&p)

	if p.Alignment != model.AlignCenter {
		t.Errorf("Alignment = %v, want direct center", p.Alignment)
	}
	if *p.LeftIndent != direct {
		t.Errorf("LeftIndent = %v, want direct value", *p.LeftIndent)
	}
}

func TestStyleResolver_ResolveRunUnknownStyle(t *testing.T) {
	sr := NewStyleResolver(&stylesXML{})
	run := model.Run{FontName: "Arial"}
	sr.ResolveRun("Missing", "AlsoMissing", &run)

	if run.FontName != "Arial" {
		t.Errorf("FontName = %q, want Arial", run.FontName)
	}
	if run.FontSize != nil {
		t.Errorf("FontSize = %v, want nil", *run.FontSize)
	}
}

func TestParseMeasures(t *testing.T) {
	tests := []struct {
		name   string
		parse  func(string) (model.Length, bool)
		input  string
		want   model.Length
		wantOK bool
	}{
		{"twips", parseTwips, "1440", model.EMUPerInch, true},
		{"twips negative", parseTwips, "-720", -model.EMUPerInch / 2, true},
		{"twips cm", parseTwips, "2.5cm", model.Cm(2.5), true},
		{"twips mm", parseTwips, "25mm", model.Cm(2.5), true},
		{"twips inch", parseTwips, "1in", model.EMUPerInch, true},
		{"twips empty", parseTwips, "", 0, false},
		{"twips junk", parseTwips, "abc", 0, false},
		{"half points", parseHalfPoints, "24", model.Pt(12), true},
		{"half points pt", parseHalfPoints, "12pt", model.Pt(12), true},
		{"half points empty", parseHalfPoints, "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.parse(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("parse(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseLineSpacing(t *testing.T) {
	if ls := parseLineSpacing(spacingXML{}); ls != nil {
		t.Errorf("empty spacing = %+v, want nil", ls)
	}

	ls := parseLineSpacing(spacingXML{Line: "276", LineRule: "auto"})
	if ls == nil || ls.Multiple != 1.15 {
		t.Errorf("auto 276 = %+v, want 1.15 multiple", ls)
	}

	ls = parseLineSpacing(spacingXML{Line: "360"})
	if ls == nil || ls.Rule != model.RuleMultiple || ls.Multiple != 1.5 {
		t.Errorf("no rule 360 = %+v, want 1.5 multiple", ls)
	}

	ls = parseLineSpacing(spacingXML{Line: "240"})
	if ls == nil || ls.Rule != model.RuleMultiple || ls.Multiple != 1 || ls.Exceeds(1.0) {
		t.Errorf("no rule 240 = %+v, want single spacing that is not flagged", ls)
	}

	ls = parseLineSpacing(spacingXML{Line: "360", LineRule: "exact"})
	if ls == nil || ls.Rule != model.RuleExact || ls.Height != model.Twips(360) {
		t.Errorf("exact 360 = %+v, want 360 twips height", ls)
	}
}
