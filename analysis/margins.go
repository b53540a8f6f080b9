package analysis

import "github.com/tsawler/revisor/model"

// Margins holds the average page margins, in centimeters, across sections.
type Margins struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
	// Sections is the number of sections averaged. When it is zero every
	// margin is reported as zero.
	Sections int
}

// AverageMargins returns the arithmetic mean of each margin across sections.
func AverageMargins(sections []model.Section) Margins {
	m := Margins{Sections: len(sections)}
	if len(sections) == 0 {
		return m
	}

	for _, s := range sections {
		m.Top += s.Top.Cm()
		m.Bottom += s.Bottom.Cm()
		m.Left += s.Left.Cm()
		m.Right += s.Right.Cm()
	}

	n := float64(len(sections))
	m.Top /= n
	m.Bottom /= n
	m.Left /= n
	m.Right /= n
	return m
}
