package core

// Level locates a count relative to its weekday average.
type Level string

const (
	LevelUnder  Level = "under 80% of the average"
	LevelAbove  Level = "above the average"
	LevelWithin Level = "within 80% of the average"
)

// ClassifyLevel places count against the weekday average. The lower
// boundary is strict: a count exactly at underRatio*average is "within",
// not "under". Likewise a count equal to the average is "within", so a
// zero average with a zero count classifies as "within".
func ClassifyLevel(count int, average, underRatio float64) Level {
	c := float64(count)
	switch {
	case c < underRatio*average:
		return LevelUnder
	case c > average:
		return LevelAbove
	default:
		return LevelWithin
	}
}

// Dispersion names the second-phase analysis chosen for a sample.
type Dispersion string

const (
	// DispersionNone means the trailing-window sample was empty and no
	// second phase ran.
	DispersionNone Dispersion = "none"

	// DispersionIQR is chosen for high-variation samples (CV above the
	// configured threshold): the count is placed against Q1/Q3.
	DispersionIQR Dispersion = "iqr"

	// DispersionMode is chosen for low-variation samples: the count is
	// checked against the most frequent historical value.
	DispersionMode Dispersion = "mode"
)

// Report is the structured outcome of submitting a count. Rendering it
// for humans is the presentation layer's job.
type Report struct {
	Date  Date
	Diary string
	Count int

	// WeekdayAverage is the trailing-window mean for the submitted
	// date's weekday; 0 when that weekday has no samples.
	WeekdayAverage float64
	Level          Level

	// SampleSize is the number of trailing-window records for the
	// diary, including the newly submitted one when it qualifies.
	SampleSize int
	CV         float64
	Dispersion Dispersion

	// IQR phase. BelowQ1 distinguishes the only two outcomes: below the
	// first quartile, or within the interquartile range (counts above
	// Q3 are reported as within range as well).
	Q1, Q3, IQR float64
	BelowQ1     bool

	// Mode phase.
	ModeValue   int
	ModeMatches bool

	// Week holds the submitted date and the six days before it,
	// newest first, with missing days reported as 0.
	Week []DatedCount
}
