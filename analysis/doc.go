// Package analysis computes formatting-compliance statistics for a document
// and renders them as a plain-text report.
//
// Analysis happens in two sequential phases over one accumulator:
//
//   - [Collect] walks the paragraphs and runs of a [model.Document] exactly
//     once and fills an [Accumulator] (font and size tallies, indentation,
//     line spacing, numbered lines, alignment before the references section,
//     left-aligned texts).
//   - [Render] turns the accumulator and the section margin averages into
//     the report text.
//
// All state lives in the accumulator returned by Collect; nothing is shared
// between analyses, so documents can be analyzed concurrently.
//
// Basic usage:
//
//	result := analysis.Analyze(doc)
//	fmt.Print(result.Report())
package analysis
