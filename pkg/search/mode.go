package search

// Mode selects which matches Search reports.
type Mode int

const (
	// ModeFirst returns at most one match: the lowest offset.
	ModeFirst Mode = iota
	// ModeAllNonOverlapping returns every match, skipping past each one so
	// no two reported matches share an element.
	ModeAllNonOverlapping
	// ModeAllOverlapping returns every match independently; two reported
	// matches may share elements.
	ModeAllOverlapping
)
