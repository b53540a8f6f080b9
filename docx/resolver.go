package docx

import "github.com/tsawler/revisor/model"

// ResolvedStyle contains the formatting a style contributes after its
// inheritance chain has been applied. Unset attributes stay at their zero
// value (empty font name, nil pointers, AlignUnset).
type ResolvedStyle struct {
	// Identity
	ID   string
	Name string
	Type string // paragraph, character, table

	// Paragraph properties
	Alignment   model.Alignment
	LeftIndent  *model.Length
	LineSpacing *model.LineSpacing

	// Run/character properties
	FontName string
	FontSize *model.Length
}

// StyleResolver resolves styles with inheritance support.
type StyleResolver struct {
	styles   map[string]*styleDefXML
	defaults *docDefaultsXML
	resolved map[string]*ResolvedStyle
	// defaultParagraph is the style ID marked w:default="1" for paragraphs.
	defaultParagraph string
}

// NewStyleResolver creates a new style resolver from parsed styles.
func NewStyleResolver(styles *stylesXML) *StyleResolver {
	sr := &StyleResolver{
		styles:   make(map[string]*styleDefXML),
		resolved: make(map[string]*ResolvedStyle),
	}

	if styles == nil {
		return sr
	}

	// Build style map
	for i := range styles.Styles {
		style := &styles.Styles[i]
		sr.styles[style.StyleID] = style
		if style.Type == styleTypeParagraph && style.isDefault() {
			sr.defaultParagraph = style.StyleID
		}
	}

	sr.defaults = &styles.DocDefaults

	return sr
}

// Resolve returns the fully resolved style for the given style ID.
// An empty ID resolves to the default paragraph style. Unknown IDs resolve to
// the document defaults alone.
func (sr *StyleResolver) Resolve(styleID string) *ResolvedStyle {
	if styleID == "" {
		styleID = sr.defaultParagraph
	}

	// Check cache
	if resolved, ok := sr.resolved[styleID]; ok {
		return resolved
	}

	resolved := sr.defaultStyle()
	resolved.ID = styleID
	sr.applyChain(resolved, styleID)

	sr.resolved[styleID] = resolved
	return resolved
}

// applyChain applies every style in the inheritance chain of styleID, from
// base to derived, onto resolved.
func (sr *StyleResolver) applyChain(resolved *ResolvedStyle, styleID string) {
	def, ok := sr.styles[styleID]
	if !ok {
		return
	}
	resolved.Name = def.Name.Val
	resolved.Type = def.Type

	for _, sid := range sr.buildInheritanceChain(styleID) {
		if d, ok := sr.styles[sid]; ok {
			applyParagraphProps(resolved, d.PPr)
			applyRunProps(resolved, d.RPr)
		}
	}
}

// defaultStyle returns a style populated from w:docDefaults.
func (sr *StyleResolver) defaultStyle() *ResolvedStyle {
	style := &ResolvedStyle{}
	if sr.defaults != nil {
		applyParagraphProps(style, sr.defaults.PPrDefault.PPr)
		applyRunProps(style, sr.defaults.RPrDefault.RPr)
	}
	return style
}

// buildInheritanceChain returns style IDs from base to derived.
func (sr *StyleResolver) buildInheritanceChain(styleID string) []string {
	var chain []string
	visited := make(map[string]bool)

	current := styleID
	for current != "" && !visited[current] {
		visited[current] = true
		chain = append([]string{current}, chain...) // Prepend

		if def, ok := sr.styles[current]; ok {
			current = def.BasedOn.Val
		} else {
			break
		}
	}

	return chain
}

// applyParagraphProps overlays the attributes set in ppr onto resolved.
func applyParagraphProps(resolved *ResolvedStyle, ppr paragraphPropsXML) {
	if align := model.ParseAlignment(ppr.Justification.Val); align != model.AlignUnset {
		resolved.Alignment = align
	}
	if indent := parseLeftIndent(ppr.Indent); indent != nil {
		resolved.LeftIndent = indent
	}
	if spacing := parseLineSpacing(ppr.Spacing); spacing != nil {
		resolved.LineSpacing = spacing
	}
}

// applyRunProps overlays the attributes set in rpr onto resolved.
func applyRunProps(resolved *ResolvedStyle, rpr runPropsXML) {
	if rpr.Font.ASCII != "" {
		resolved.FontName = rpr.Font.ASCII
	}
	if size, ok := parseHalfPoints(rpr.FontSize.Val); ok && size > 0 {
		resolved.FontSize = size.Ptr()
	}
}

// ResolveParagraph fills the unset paragraph attributes of p from its style.
func (sr *StyleResolver) ResolveParagraph(p *model.Paragraph) {
	style := sr.Resolve(p.StyleID)
	if p.Alignment == model.AlignUnset {
		p.Alignment = style.Alignment
	}
	if p.LeftIndent == nil {
		p.LeftIndent = style.LeftIndent
	}
	if p.LineSpacing == nil {
		p.LineSpacing = style.LineSpacing
	}
}

// ResolveRun fills the unset font attributes of run from the character style
// named by runStyle, falling back to the paragraph style.
func (sr *StyleResolver) ResolveRun(paragraphStyle, runStyle string, run *model.Run) {
	base := sr.Resolve(paragraphStyle)
	fontName, fontSize := base.FontName, base.FontSize

	if runStyle != "" {
		char := &ResolvedStyle{ID: runStyle}
		sr.applyChain(char, runStyle)
		if char.FontName != "" {
			fontName = char.FontName
		}
		if char.FontSize != nil {
			fontSize = char.FontSize
		}
	}

	if run.FontName == "" {
		run.FontName = fontName
	}
	if run.FontSize == nil {
		run.FontSize = fontSize
	}
}
