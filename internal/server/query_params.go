package server

import (
	"strconv"
	"strings"

	sitedomain "github.com/smallbiznis/sitesapi/internal/site/domain"
)

func parseOptionalBool(value string) (*bool, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseBool(trimmed)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseSiteID(value string) (int64, error) {
	parsed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, sitedomain.ErrInvalidID
	}
	return parsed, nil
}

// optionalQuery distinguishes an absent parameter from an empty one.
func optionalQuery(value string, present bool) *string {
	if !present {
		return nil
	}
	trimmed := strings.TrimSpace(value)
	return &trimmed
}
