package middleware

import (
	"strconv"
	"strings"

	"drh-client/internal/domain"
	"drh-client/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by ValidationMiddleware.
const (
	LocalEntryID    = "validated_entry_id"
	LocalListParams = "validated_list_params"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateEntryID parses the :id path parameter as a positive entry id.
func (vm *ValidationMiddleware) ValidateEntryID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params("id")
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.ValidationErrors{domain.NewInvalidFormatError("id", raw)}
		}
		if errors := vm.validator.ValidateEntryIDs([]int64{id}); len(errors) > 0 {
			return errors
		}

		c.Locals(LocalEntryID, id)
		return c.Next()
	}
}

// ValidateListParams reads the list filters from the query string.
func (vm *ValidationMiddleware) ValidateListParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		params, errors := ParseListParams(c)
		if len(errors) == 0 {
			errors = vm.validator.ValidateListParams(params)
		}
		if len(errors) > 0 {
			return errors
		}

		c.Locals(LocalListParams, params)
		return c.Next()
	}
}

// ParseListParams decodes limit, offset, ordering, approved, the date range
// and the comma separated id filters. Values are only parsed here; ranges
// are checked by the validator. Errors follow the order limit, offset,
// approved, expert, created_by, region, poll.
func ParseListParams(c *fiber.Ctx) (domain.ListParams, domain.ValidationErrors) {
	var errors domain.ValidationErrors
	params := domain.ListParams{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Ordering:  c.Query("ordering"),
	}

	for _, f := range []struct {
		key string
		dst *int
	}{{"limit", &params.Limit}, {"offset", &params.Offset}} {
		if raw := c.Query(f.key); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				errors = append(errors, domain.NewInvalidFormatError(f.key, raw))
				continue
			}
			*f.dst = n
		}
	}
	if raw := c.Query("approved"); raw != "" {
		approved, err := strconv.ParseBool(raw)
		if err != nil {
			errors = append(errors, domain.NewInvalidFormatError("approved", raw))
		} else {
			params.Approved = &approved
		}
	}
	for _, f := range []struct {
		key string
		dst *[]int64
	}{
		{"expert", &params.Expert},
		{"created_by", &params.CreatedBy},
		{"region", &params.Region},
		{"poll", &params.Poll},
	} {
		raw := c.Query(f.key)
		if raw == "" {
			continue
		}
		ids, err := parseIDList(raw)
		if err != nil {
			errors = append(errors, domain.NewInvalidFormatError(f.key, raw))
			continue
		}
		*f.dst = ids
	}
	return params, errors
}

func parseIDList(raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
