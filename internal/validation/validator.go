package validation

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"drh-client/internal/domain"
	"drh-client/internal/dto"
)

const (
	maxNameLength     = 140
	maxListLimit      = 1000
	maxEntriesPerCall = 500
	dateTimeLayout    = "2006-01-02T15:04:05"
	dateLayout        = "2006-01-02"
)

var (
	validULID = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)

	validEntrySources = map[string]bool{
		domain.SourcePersonalExpertise: true,
		domain.SourceSecondarySource:   true,
		domain.SourceExpertSource:      true,
		domain.SourceSupervisedEntry:   true,
	}
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateEntryIDs validates the ids of an answers request
func (v *Validator) ValidateEntryIDs(ids []int64) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if len(ids) == 0 {
		errors = append(errors, domain.NewMissingFieldError("entry_ids"))
		return errors
	}
	if len(ids) > maxEntriesPerCall {
		errors = append(errors, domain.NewOutOfRangeError("entry_ids", len(ids), 1, maxEntriesPerCall))
	}
	for _, id := range ids {
		if id <= 0 {
			errors = append(errors, domain.NewInvalidFormatError("entry_ids", id))
			break
		}
	}
	return errors
}

// ValidateRunID validates a stored run identifier
func (v *Validator) ValidateRunID(runID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(runID) == "" {
		errors = append(errors, domain.NewMissingFieldError("run_id"))
	} else if !isValidULID(runID) {
		errors = append(errors, domain.NewInvalidFormatError("run_id", runID))
	}
	return errors
}

// ValidateListParams validates list endpoint filters
func (v *Validator) ValidateListParams(p domain.ListParams) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if p.Limit < 0 || p.Limit > maxListLimit {
		errors = append(errors, domain.NewOutOfRangeError("limit", p.Limit, 1, maxListLimit))
	}
	if p.Offset < 0 {
		errors = append(errors, domain.NewInvalidFormatError("offset", p.Offset))
	}
	if p.StartDate != "" {
		if _, err := NormalizeDate(p.StartDate); err != nil {
			errors = append(errors, domain.NewInvalidFormatError("start_date", p.StartDate))
		}
	}
	if p.EndDate != "" {
		if _, err := NormalizeDate(p.EndDate); err != nil {
			errors = append(errors, domain.NewInvalidFormatError("end_date", p.EndDate))
		}
	}
	idFilters := []struct {
		field string
		ids   []int64
	}{
		{"expert", p.Expert}, {"created_by", p.CreatedBy}, {"region", p.Region}, {"poll", p.Poll},
	}
	for _, f := range idFilters {
		for _, id := range f.ids {
			if id <= 0 {
				errors = append(errors, domain.NewInvalidFormatError(f.field, id))
				break
			}
		}
	}
	return errors
}

// ValidateQuestionName validates the entries-by-question filter
func (v *Validator) ValidateQuestionName(name string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(name) == "" {
		errors = append(errors, domain.NewMissingFieldError("question_name"))
	}
	return errors
}

// ValidateNewEntry validates the body of an add-entry request
func (v *Validator) ValidateNewEntry(req *dto.NewEntryRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if req.PollID == nil {
		errors = append(errors, domain.NewMissingFieldError("poll_id"))
	}
	if req.RegionID == nil {
		errors = append(errors, domain.NewMissingFieldError("region_id"))
	}
	if req.SecondarySourceID == nil {
		errors = append(errors, domain.NewMissingFieldError("secondary_source_id"))
	}
	if strings.TrimSpace(req.Description) == "" {
		errors = append(errors, domain.NewMissingFieldError("description"))
	}
	if strings.TrimSpace(req.ExternalURL) == "" {
		errors = append(errors, domain.NewMissingFieldError("external_url"))
	} else if !isAbsoluteURL(req.ExternalURL) {
		errors = append(errors, domain.NewInvalidFormatError("external_url", req.ExternalURL))
	}
	errors = append(errors, validateYearRange(req.YearFrom, req.YearTo, true)...)
	if req.EntrySource != "" && !validEntrySources[req.EntrySource] {
		errors = append(errors, domain.NewInvalidFormatError("entry_source", req.EntrySource))
	}
	return errors
}

// ValidateNewAnswerSet validates the body of an add-answer-set request
func (v *Validator) ValidateNewAnswerSet(entryID int64, req *dto.NewAnswerSetRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if entryID <= 0 {
		errors = append(errors, domain.NewInvalidFormatError("entry_id", entryID))
	}
	if req.QuestionID == nil {
		errors = append(errors, domain.NewMissingFieldError("question_id"))
	}
	if len(req.Answers) == 0 {
		errors = append(errors, domain.NewMissingFieldError("answers"))
	}
	for _, a := range req.Answers {
		if a.TemplateAnswerID == nil {
			errors = append(errors, domain.NewMissingFieldError("answers.template_answer_id"))
			break
		}
	}
	errors = append(errors, validateYearRange(req.YearFrom, req.YearTo, false)...)
	return errors
}

// ValidateNewTag validates the body of an add-entry-tag or add-region-tag request
func (v *Validator) ValidateNewTag(req *dto.NewTagRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.Name) == "" {
		errors = append(errors, domain.NewMissingFieldError("name"))
	} else if len(req.Name) > maxNameLength {
		errors = append(errors, domain.NewOutOfRangeError("name", len(req.Name), 1, maxNameLength))
	}
	return errors
}

// ValidateNewRegion validates the body of an add-region request
func (v *Validator) ValidateNewRegion(req *dto.NewRegionRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if len(req.Name) > maxNameLength {
		errors = append(errors, domain.NewOutOfRangeError("name", len(req.Name), 0, maxNameLength))
	}
	if req.Geom == nil {
		errors = append(errors, domain.NewMissingFieldError("geom"))
		return errors
	}
	if req.Geom.Type != "MultiPolygon" {
		errors = append(errors, domain.NewInvalidFormatError("geom.type", req.Geom.Type))
	}
	if !isValidMultiPolygon(req.Geom.Coordinates) {
		errors = append(errors, domain.NewInvalidFormatError("geom.coordinates", nil))
	}
	return errors
}

// NormalizeDate accepts YYYY-MM-DD or YYYY-MM-DDTHH:MM:SS and returns the
// latter form.
func NormalizeDate(s string) (string, error) {
	if t, err := time.Parse(dateTimeLayout, s); err == nil {
		return t.Format(dateTimeLayout), nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", domain.ValidationErrors{domain.NewInvalidFormatError("date", s)}
	}
	return t.Format(dateTimeLayout), nil
}

// Helper functions for validation

func validateYearRange(from, to *int64, required bool) domain.ValidationErrors {
	var errors domain.ValidationErrors
	if required && from == nil {
		errors = append(errors, domain.NewMissingFieldError("year_from"))
	}
	if required && to == nil {
		errors = append(errors, domain.NewMissingFieldError("year_to"))
	}
	if from != nil && to != nil && *from > *to {
		errors = append(errors, domain.ValidationError{
			Field:   "year_to",
			Code:    domain.CodeOutOfRange,
			Message: "year_to must not be before year_from",
			Value:   *to,
		})
	}
	return errors
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	return len(s) == 26 && validULID.MatchString(s)
}

func isAbsoluteURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// isValidMultiPolygon requires at least one polygon whose rings are closed
// and hold at least four [x, y] positions.
func isValidMultiPolygon(coords [][][][]float64) bool {
	if len(coords) == 0 {
		return false
	}
	for _, polygon := range coords {
		if len(polygon) == 0 {
			return false
		}
		for _, ring := range polygon {
			if len(ring) < 4 {
				return false
			}
			for _, pos := range ring {
				if len(pos) != 2 {
					return false
				}
			}
			first, last := ring[0], ring[len(ring)-1]
			if first[0] != last[0] || first[1] != last[1] {
				return false
			}
		}
	}
	return true
}
