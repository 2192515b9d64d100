// Package grouping provides the derived groupings computed during rendering:
// experience entries bucketed by employer and skills or freeform items
// bucketed by category label.
package grouping

import (
	"time"

	"github.com/c7harry/bayform/internal/types"
)

// epoch is the instant unparseable or missing dates collapse to, so they
// float to the bottom of a descending sort.
var epoch = time.Unix(0, 0).UTC()

// startDateLayouts are tried in order when parsing experience start dates.
var startDateLayouts = []string{
	"2006",         // "2020"
	"01/2006",      // "03/2020"
	"January 2006", // "March 2020"
	"Jan 2006",     // "Mar 2020"
}

// ParseStartDate parses an experience start date for sort comparison.
// Accepted forms: a 4-digit year, "MM/YYYY", or a month name with year.
// Empty or unparseable input returns the epoch; no error is raised.
func ParseStartDate(s string) time.Time {
	if s == "" {
		return epoch
	}
	for _, layout := range startDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return epoch
}

// DateRange formats the displayed date range for an experience entry.
// Current positions always render "Present" as the end date, regardless of
// any stored end date.
func DateRange(e types.Experience) string {
	end := e.EndDate
	if e.Current {
		end = "Present"
	}

	switch {
	case e.StartDate == "" && end == "":
		return ""
	case e.StartDate == "":
		return end
	case end == "":
		return e.StartDate
	}
	return e.StartDate + " - " + end
}
