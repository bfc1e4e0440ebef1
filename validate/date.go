package validate

import (
	"time"

	"github.com/robinvdvleuten/invoicecheck/invoice"
)

// dateLayouts covers the ISO-8601 extended forms an invoice date may use:
// a calendar date, or a date plus time separated by 'T' or a space, with
// seconds optional and a trailing Z or numeric offset optional. Fractional
// seconds are accepted wherever seconds are.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04Z07:00",
	"2006-01-02 15:04",
}

// ValidDate reports whether the value holds an ISO-8601 calendar date or
// date+time. Calendar validity is enforced, so month 13 or February 30
// fail. Absent values are the required-field check's concern; here they
// simply do not parse.
func ValidDate(v any) bool {
	s := invoice.Text(v)
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
