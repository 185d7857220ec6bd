package sqlgen

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Node is the rendering contract implemented by every syntax-tree type.
// WriteSQL writes the node's SQL text for the given dialect into w. The
// same dialect value is threaded through the entire walk; rendering never
// mutates the node or the dialect.
type Node interface {
	WriteSQL(w io.Writer, d *Dialect) error
}

// Expr is a scalar expression node. The precedence-aware expression
// printer lives outside this package; any type that renders itself as an
// expression can participate in the tree by implementing this interface.
type Expr interface {
	Node
	IsExpr()
}

// GenError wraps the sink failure that aborted a render. Rendering has no
// other failure mode: a well-formed tree always has a defined textual
// form, so a GenError means the output sink rejected a write.
type GenError struct {
	Err error
}

func (e *GenError) Error() string {
	return fmt.Sprintf("sqlgen: %v", e.Err)
}

func (e *GenError) Unwrap() error {
	return e.Err
}

// ToSQL renders a node to a freshly allocated string.
func ToSQL(n Node, d *Dialect) (string, error) {
	var sb strings.Builder
	if err := n.WriteSQL(&sb, d); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// genErr wraps a sink error exactly once. Child failures already carry a
// GenError and propagate unchanged.
func genErr(err error) error {
	if err == nil {
		return nil
	}
	var ge *GenError
	if errors.As(err, &ge) {
		return err
	}
	return &GenError{Err: err}
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return genErr(err)
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return genErr(err)
}

// writeJoined renders items separated by ", " with no trailing separator.
// Every comma-separated list in the grammar goes through this one helper:
// projections, column lists, argument lists, row values, CTEs.
func writeJoined[T Node](w io.Writer, d *Dialect, items []T) error {
	for i, item := range items {
		if i > 0 {
			if err := writeString(w, ", "); err != nil {
				return err
			}
		}
		if err := item.WriteSQL(w, d); err != nil {
			return err
		}
	}
	return nil
}
