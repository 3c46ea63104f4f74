package mutation

import (
	"errors"
	"fmt"
)

// Outcome is the result of one mutation. Writes counts attempted store writes.
type Outcome struct {
	Mutation Mutation
	Writes   int
	Err      error
}

// Report collects the outcomes of one Run, in plan order.
type Report struct {
	Outcomes []Outcome
}

// Failed returns the outcomes that carry an error.
func (r Report) Failed() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}

// Writes is the total number of attempted writes.
func (r Report) Writes() int {
	n := 0
	for _, o := range r.Outcomes {
		n += o.Writes
	}
	return n
}

// Err summarizes the failed mutations, or returns nil.
func (r Report) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	errs := make([]error, 0, len(failed))
	for _, o := range failed {
		errs = append(errs, fmt.Errorf("%s: %w", o.Mutation.Describe(), o.Err))
	}
	return fmt.Errorf("%d of %d changes failed: %w", len(failed), len(r.Outcomes), errors.Join(errs...))
}
