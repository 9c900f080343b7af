package domain

// DefaultListLimit is the page size used when none is given.
const DefaultListLimit = 25

// ListParams are the filters accepted by the DRH list endpoints. Each
// endpoint only forwards the subset it supports; zero values are omitted.
type ListParams struct {
	Expert    []int64
	CreatedBy []int64
	Region    []int64
	Poll      []int64
	Approved  *bool
	// StartDate and EndDate are YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS.
	StartDate string
	EndDate   string
	Limit     int
	Offset    int
	Ordering  string
}
