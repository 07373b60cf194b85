package repository

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoFields is returned when an update would carry an empty SET clause.
// Callers translate it to a validation failure instead of issuing a no-op
// statement.
var ErrNoFields = errors.New("no fields to update")

// updateSet accumulates column/value pairs for a dynamic UPDATE statement.
// Column names must come from hardcoded allow-lists, never from caller input;
// only values are bound as parameters. A nil value is kept and binds NULL —
// skipping a column is expressed by not calling Set at all.
type updateSet struct {
	cols []string
	args []any
}

// Set appends a column assignment. The column appears exactly once per call.
func (u *updateSet) Set(column string, value any) {
	u.cols = append(u.cols, column)
	u.args = append(u.args, value)
}

// Empty reports whether no assignment was recorded.
func (u *updateSet) Empty() bool { return len(u.cols) == 0 }

// Clause renders the SET fragment with positional placeholders starting at
// the given index and returns the bound values in matching order.
func (u *updateSet) Clause(start int) (string, []any) {
	parts := make([]string, 0, len(u.cols))
	for i, col := range u.cols {
		parts = append(parts, fmt.Sprintf("%s = $%d", col, start+i))
	}
	return strings.Join(parts, ", "), u.args
}
