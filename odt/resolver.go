package odt

import "github.com/tsawler/revisor/model"

// ResolvedStyle contains the resolved properties for a style.
type ResolvedStyle struct {
	// Identity
	Name   string
	Family string // paragraph or text

	// Paragraph properties
	Alignment   model.Alignment
	LeftIndent  *model.Length
	LineSpacing *model.LineSpacing

	// Text properties
	FontName string
	FontSize *model.Length
}

// StyleResolver resolves styles with inheritance support.
//
// Automatic styles (office:automatic-styles) are how ODF stores direct
// formatting; Direct reads only those. Resolve also walks the named parent
// chain and the family default style.
type StyleResolver struct {
	styles    map[styleKey]*styleDefXML
	automatic map[styleKey]bool
	defaults  map[string]*styleDefXML // by family
	fonts     map[string]string       // font face name -> family
	resolved  map[styleKey]*ResolvedStyle
}

// styleKey identifies a style; names are unique within a family.
type styleKey struct {
	family string
	name   string
}

// NewStyleResolver creates a new style resolver from the styles of
// content.xml and styles.xml. Either may be nil.
func NewStyleResolver(content *contentStylesXML, docStyles *stylesXML) *StyleResolver {
	sr := &StyleResolver{
		styles:    make(map[styleKey]*styleDefXML),
		automatic: make(map[styleKey]bool),
		defaults:  make(map[string]*styleDefXML),
		fonts:     make(map[string]string),
		resolved:  make(map[styleKey]*ResolvedStyle),
	}

	// Add styles from styles.xml (named styles)
	if docStyles != nil {
		sr.addFonts(docStyles.FontFaces)
		sr.addSection(docStyles.Styles, false)
		sr.addSection(docStyles.AutoStyles, true)
	}

	// Add automatic styles from content.xml (override named styles)
	if content != nil {
		sr.addFonts(content.FontFaces)
		sr.addSection(content.AutoStyles, true)
	}

	return sr
}

func (sr *StyleResolver) addFonts(decls fontFaceDeclsXML) {
	for _, ff := range decls.FontFaces {
		if ff.Name != "" && ff.Family != "" {
			sr.fonts[ff.Name] = cleanFontFamily(ff.Family)
		}
	}
}

func (sr *StyleResolver) addSection(section styleSectionXML, automatic bool) {
	for i := range section.Styles {
		style := &section.Styles[i]
		key := styleKey{style.Family, style.Name}
		sr.styles[key] = style
		sr.automatic[key] = automatic
	}
	for i := range section.DefaultStyles {
		style := &section.DefaultStyles[i]
		sr.defaults[style.Family] = style
	}
}

// Direct returns the properties set by an automatic style. Named styles
// and unknown names yield an empty style.
func (sr *StyleResolver) Direct(family, name string) *ResolvedStyle {
	resolved := &ResolvedStyle{Name: name, Family: family}
	key := styleKey{family, name}
	if def, ok := sr.styles[key]; ok && sr.automatic[key] {
		sr.applyStyleDef(resolved, def)
	}
	return resolved
}

// Resolve returns the fully resolved style: the family default style, then
// the parent chain from base to derived.
func (sr *StyleResolver) Resolve(family, name string) *ResolvedStyle {
	key := styleKey{family, name}

	// Check cache
	if resolved, ok := sr.resolved[key]; ok {
		return resolved
	}

	resolved := &ResolvedStyle{Name: name, Family: family}
	if def, ok := sr.defaults[family]; ok {
		sr.applyStyleDef(resolved, def)
	}
	sr.applyChain(resolved, family, name)

	sr.resolved[key] = resolved
	return resolved
}

// MasterPage returns the master page a paragraph style switches to, or ""
// when it does not start a new page style. The attribute is not inherited.
func (sr *StyleResolver) MasterPage(name string) string {
	if def, ok := sr.styles[styleKey{familyParagraph, name}]; ok {
		return def.MasterPageName
	}
	return ""
}

// applyChain applies every style in the parent chain of name, from base to
// derived, onto resolved.
func (sr *StyleResolver) applyChain(resolved *ResolvedStyle, family, name string) {
	for _, def := range sr.buildInheritanceChain(family, name) {
		sr.applyStyleDef(resolved, def)
	}
}

// buildInheritanceChain returns style definitions from base to derived.
func (sr *StyleResolver) buildInheritanceChain(family, name string) []*styleDefXML {
	var chain []*styleDefXML
	visited := make(map[string]bool)

	current := name
	for current != "" && !visited[current] {
		visited[current] = true

		def, ok := sr.styles[styleKey{family, current}]
		if !ok {
			break
		}
		chain = append([]*styleDefXML{def}, chain...) // Prepend
		current = def.ParentStyleName
	}

	return chain
}

// applyStyleDef applies a style definition's properties to a resolved style.
func (sr *StyleResolver) applyStyleDef(resolved *ResolvedStyle, def *styleDefXML) {
	// Paragraph properties
	if ppr := def.ParagraphProps; ppr != nil {
		if align := parseAlignment(ppr.TextAlign); align != model.AlignUnset {
			resolved.Alignment = align
		}
		if indent, ok := parseLength(ppr.MarginLeft); ok {
			resolved.LeftIndent = indent.Ptr()
		}
		if ls := parseLineSpacing(ppr); ls != nil {
			resolved.LineSpacing = ls
		}
	}

	// Text properties
	if tpr := def.TextProps; tpr != nil {
		if name := sr.fontFamily(tpr); name != "" {
			resolved.FontName = name
		}
		if size := parseFontSize(tpr.FontSize); size != nil {
			resolved.FontSize = size
		}
	}
}

// fontFamily returns the family named by text properties, looking font
// face names up in the font declarations.
func (sr *StyleResolver) fontFamily(tpr *textPropsXML) string {
	if tpr.FontName != "" {
		if family, ok := sr.fonts[tpr.FontName]; ok {
			return family
		}
		return tpr.FontName
	}
	return cleanFontFamily(tpr.FontFamily)
}

// ResolveParagraph fills the unset paragraph attributes of p from its style.
func (sr *StyleResolver) ResolveParagraph(p *model.Paragraph) {
	style := sr.Resolve(familyParagraph, p.StyleID)
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

// ResolveRun fills the unset font attributes of run from the text style
// named by spanStyle, falling back to the paragraph style.
func (sr *StyleResolver) ResolveRun(paragraphStyle, spanStyle string, run *model.Run) {
	base := sr.Resolve(familyParagraph, paragraphStyle)
	fontName, fontSize := base.FontName, base.FontSize

	if spanStyle != "" {
		span := &ResolvedStyle{Name: spanStyle, Family: familyText}
		sr.applyChain(span, familyText, spanStyle)
		if span.FontName != "" {
			fontName = span.FontName
		}
		if span.FontSize != nil {
			fontSize = span.FontSize
		}
	}

	if run.FontName == "" {
		run.FontName = fontName
	}
	if run.FontSize == nil {
		run.FontSize = fontSize
	}
}
