package revisor

// AnalyzeOptions holds configuration for document analysis.
type AnalyzeOptions struct {
	// Fill unset paragraph and run formatting from styles.xml
	inheritStyles bool
}

// defaultOptions returns the default analysis options: direct formatting only.
func defaultOptions() AnalyzeOptions {
	return AnalyzeOptions{
		inheritStyles: false,
	}
}

// clone creates a copy of AnalyzeOptions.
func (o AnalyzeOptions) clone() AnalyzeOptions {
	return AnalyzeOptions{
		inheritStyles: o.inheritStyles,
	}
}
