// Package model provides the structured representation of a word-processing
// document as consumed by the formatting analyzer.
//
// The types in this package are produced by a document reader (see the docx
// package) and are treated as immutable input by the analysis package.
//
// # Document Structure
//
// A [Document] holds an ordered list of [Paragraph] values and the ordered
// list of [Section] values that carry page margins:
//
//	doc := model.NewDocument()
//	doc.AddParagraph(model.Paragraph{Text: "Introduction"})
//	doc.AddSection(model.Section{Top: model.Cm(2.5)})
//
// Each paragraph carries its runs ([Run]) along with paragraph-level
// formatting: alignment, left indent and line spacing.
//
// # Units
//
// All lengths are expressed as [Length], an integer count of English Metric
// Units (EMU). Conversions to centimeters, points and twips are provided by
// methods on [Length].
//
// # Optional attributes
//
// Attributes that a document may leave unset are modelled as pointers (or,
// for font names, the empty string). A nil value means the attribute was not
// specified on the element.
package model
