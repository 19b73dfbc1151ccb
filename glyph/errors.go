package glyph

import (
	"errors"
	"fmt"
)

// Fatal errors of a conversion run. Callers should test with errors.Is, as
// returned errors wrap these with the path concerned.
var (
	// ErrSourceUnavailable is returned if the font source cannot be located or read.
	ErrSourceUnavailable = errors.New("font source unavailable")
	// ErrDestinationUnwritable is returned if the generated header cannot be written.
	ErrDestinationUnwritable = errors.New("destination unwritable")
)

// Drop records a candidate glyph that has been skipped because it did not meet
// the shape, length or lookup requirements of its table.
// Drops are never returned as errors: conversion favours a partial table over
// aborting on a single bad record. They may be inspected after a run.
type Drop struct {
	Table Table  // table the candidate belonged to
	Line  int    // 1-based source line where the problem was detected (0 if at end of input)
	Issue string // human-readable description
}

// String returns a human-readable representation of the drop.
func (d Drop) String() string {
	if d.Line > 0 {
		return fmt.Sprintf("[DROP] %s at line %d: %s", d.Table, d.Line, d.Issue)
	}
	return fmt.Sprintf("[DROP] %s at end of input: %s", d.Table, d.Issue)
}

// Drops is a list of dropped candidates, in source order per table.
type Drops []Drop

// Count returns the number of drops for table t.
func (ds Drops) Count(t Table) int {
	n := 0
	for _, d := range ds {
		if d.Table == t {
			n++
		}
	}
	return n
}
