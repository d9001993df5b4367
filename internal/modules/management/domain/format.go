package domain

import (
	"fmt"
	"time"
)

const (
	NotAvailable = "N/A"
	InvalidDate  = "Invalid Date"
	DateLayout   = "Jan 2, 2006"
)

var dateKeys = map[string]bool{
	"date_of_birth": true,
	"release_date":  true,
	"created_at":    true,
	"updated_at":    true,
}

var dateInputs = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", time.DateOnly}

// FormatCell is the default rendering of a field value. Booleans come first,
// then date-valued keys, then missing values, then plain stringification.
func FormatCell(key string, value any) string {
	if b, ok := value.(bool); ok {
		if b {
			return "Yes"
		}
		return "No"
	}
	if dateKeys[key] && value != nil {
		return formatDate(value)
	}
	if value == nil {
		return NotAvailable
	}
	return fmt.Sprint(value)
}

func formatDate(value any) string {
	s, ok := value.(string)
	if !ok {
		return InvalidDate
	}
	for _, layout := range dateInputs {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout)
		}
	}
	return InvalidDate
}
