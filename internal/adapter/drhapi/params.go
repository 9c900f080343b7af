package drhapi

import (
	"strconv"
	"strings"

	"drh-client/internal/domain"
	"drh-client/internal/validation"
)

// Query parameters accepted by each list endpoint.
var (
	entryParams     = []string{"expert", "start_date", "end_date", "limit", "offset", "ordering", "region", "poll"}
	entryTagParams  = []string{"approved", "created_by", "start_date", "end_date", "limit", "offset", "ordering"}
	regionParams    = []string{"created_by", "start_date", "end_date", "limit", "offset", "ordering"}
	regionTagParams = entryTagParams
)

// QueryParams renders p as query parameters, keeping only the allowed keys.
// Id lists are comma joined, dates normalised to YYYY-MM-DDTHH:MM:SS and the
// limit defaults to 25.
func QueryParams(p domain.ListParams, allowed []string) (map[string]string, error) {
	all := map[string]string{
		"limit": strconv.Itoa(domain.DefaultListLimit),
	}
	if p.Limit > 0 {
		all["limit"] = strconv.Itoa(p.Limit)
	}
	if p.Offset > 0 {
		all["offset"] = strconv.Itoa(p.Offset)
	}
	if p.Ordering != "" {
		all["ordering"] = p.Ordering
	}
	if p.Approved != nil {
		all["approved"] = strconv.FormatBool(*p.Approved)
	}
	for _, f := range []struct {
		key string
		ids []int64
	}{
		{"expert", p.Expert},
		{"created_by", p.CreatedBy},
		{"region", p.Region},
		{"poll", p.Poll},
	} {
		if len(f.ids) > 0 {
			all[f.key] = joinIDs(f.ids)
		}
	}
	for _, f := range [...]struct{ key, value string }{
		{"start_date", p.StartDate},
		{"end_date", p.EndDate},
	} {
		if f.value == "" {
			continue
		}
		normalized, err := validation.NormalizeDate(f.value)
		if err != nil {
			return nil, domain.ValidationErrors{domain.NewInvalidFormatError(f.key, f.value)}
		}
		all[f.key] = normalized
	}

	params := make(map[string]string, len(allowed))
	for _, key := range allowed {
		if v, ok := all[key]; ok {
			params[key] = v
		}
	}
	return params, nil
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}
