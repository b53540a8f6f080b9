package model

// Length is a distance expressed in English Metric Units (EMU).
// WordprocessingML stores most measurements in twips or half-points; both
// convert to an exact integer number of EMU.
type Length int64

// EMU conversion factors.
const (
	EMUPerInch  = 914400
	EMUPerCm    = 360000
	EMUPerPoint = 12700
	EMUPerTwip  = 635
)

// Cm returns a Length from a value in centimeters.
func Cm(cm float64) Length {
	return Length(cm * EMUPerCm)
}

// Pt returns a Length from a value in points.
func Pt(pt float64) Length {
	return Length(pt * EMUPerPoint)
}

// Twips returns a Length from a value in twentieths of a point.
func Twips(twips int64) Length {
	return Length(twips * EMUPerTwip)
}

// Cm returns the length in centimeters.
func (l Length) Cm() float64 {
	return float64(l) / EMUPerCm
}

// Pt returns the length in points.
func (l Length) Pt() float64 {
	return float64(l) / EMUPerPoint
}

// Twips returns the length in twips, truncated toward zero.
func (l Length) Twips() int64 {
	return int64(l) / EMUPerTwip
}

// Ptr returns a pointer to l. Used when populating optional attributes.
func (l Length) Ptr() *Length {
	return &l
}
