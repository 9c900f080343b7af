package commands

import (
	"fmt"
	"strconv"

	"drh-client/internal/domain"

	"github.com/spf13/pflag"
)

// listFlags mirrors the filters of the DRH list endpoints. Each endpoint
// only forwards the ones it supports.
type listFlags struct {
	expert    []int64
	createdBy []int64
	region    []int64
	poll      []int64
	approved  string
	startDate string
	endDate   string
	ordering  string
	limit     int
	offset    int
}

func (f *listFlags) register(fs *pflag.FlagSet) {
	fs.Int64SliceVar(&f.expert, "expert", nil, "filter by expert ids")
	fs.Int64SliceVar(&f.createdBy, "created-by", nil, "filter by creator user ids")
	fs.Int64SliceVar(&f.region, "region", nil, "filter by region ids")
	fs.Int64SliceVar(&f.poll, "poll", nil, "filter by poll ids")
	fs.StringVar(&f.approved, "approved", "", "filter tags by approval (true or false)")
	fs.StringVar(&f.startDate, "start-date", "", "created on or after (YYYY-MM-DD)")
	fs.StringVar(&f.endDate, "end-date", "", "created on or before (YYYY-MM-DD)")
	fs.StringVar(&f.ordering, "ordering", "", "ordering field, prefix with - for descending")
	fs.IntVar(&f.limit, "limit", 0, fmt.Sprintf("page size (default %d)", domain.DefaultListLimit))
	fs.IntVar(&f.offset, "offset", 0, "page offset")
}

func (f *listFlags) params() (domain.ListParams, error) {
	p := domain.ListParams{
		Expert:    f.expert,
		CreatedBy: f.createdBy,
		Region:    f.region,
		Poll:      f.poll,
		StartDate: f.startDate,
		EndDate:   f.endDate,
		Ordering:  f.ordering,
		Limit:     f.limit,
		Offset:    f.offset,
	}
	if f.approved != "" {
		approved, err := strconv.ParseBool(f.approved)
		if err != nil {
			return p, domain.ValidationErrors{domain.NewInvalidFormatError("approved", f.approved)}
		}
		p.Approved = &approved
	}
	return p, nil
}

// searching reports whether any filter was given.
func (f *listFlags) searching() bool {
	return len(f.expert) > 0 || len(f.createdBy) > 0 || len(f.region) > 0 || len(f.poll) > 0 ||
		f.startDate != "" || f.endDate != "" || f.ordering != "" || f.limit > 0 || f.offset > 0
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, domain.ValidationErrors{domain.NewInvalidFormatError("entry_ids", arg)}
		}
		ids = append(ids, id)
	}
	return ids, nil
}
