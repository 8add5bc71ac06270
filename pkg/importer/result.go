package importer

import (
	"fmt"
	"strings"
)

// Result is the outcome of one import. The Added counters count records
// actually created or updated; unchanged rows are not counted.
type Result struct {
	CustomersAdded int      `json:"customersAdded"`
	LeadtimesAdded int      `json:"leadtimesAdded"`
	SchedulesAdded int      `json:"schedulesAdded"`
	Errors         []string `json:"errors"`
	Warnings       []string `json:"warnings"`
}

func (r *Result) Success() bool { return len(r.Errors) == 0 }

func (r *Result) Message() string {
	if !r.Success() {
		return strings.Join(r.Errors, "; ")
	}
	return fmt.Sprintf("Import successful! Processed %d customers, %d leadtimes, %d shipping schedules.",
		r.CustomersAdded, r.LeadtimesAdded, r.SchedulesAdded)
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}
