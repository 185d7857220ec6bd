package sqlgen

import (
	"io"
	"strings"
)

// Ident is a single identifier. Quoting is dialect-driven: when the
// dialect carries a quote style the identifier is wrapped in it with
// embedded quote characters doubled, otherwise it is emitted bare.
type Ident struct {
	Value string
}

func (id Ident) IsExpr() {}

func (id Ident) WriteSQL(w io.Writer, d *Dialect) error {
	if d.QuoteStyle == 0 {
		return writeString(w, id.Value)
	}
	open, end := d.QuoteStyle, d.QuoteStyle
	if open == '[' {
		end = ']'
	}
	return writef(w, "%c%s%c", open, EscapeQuotedString(id.Value, open), end)
}

// ObjectName is a possibly-qualified name such as `schema.table`, joined
// with dots; each part is quoted per the dialect.
type ObjectName []Ident

func (n ObjectName) IsExpr() {}

func (n ObjectName) WriteSQL(w io.Writer, d *Dialect) error {
	for i, part := range n {
		if i > 0 {
			if err := writeString(w, "."); err != nil {
				return err
			}
		}
		if err := part.WriteSQL(w, d); err != nil {
			return err
		}
	}
	return nil
}

// text is the raw dotted form, used for transform and builtin lookup.
func (n ObjectName) text() string {
	parts := make([]string, len(n))
	for i, part := range n {
		parts[i] = part.Value
	}
	return strings.Join(parts, ".")
}

// Function is a scalar or aggregate call. This is the one render site that
// consults the dialect's transform registry: arguments are rendered first,
// and a transform registered under the call's exact name replaces the
// whole call with its output. Without a transform the call is emitted
// unmodified, quoting the name when the dialect quotes recognized builtin
// names.
type Function struct {
	Name     ObjectName
	Args     []FunctionArg
	Distinct bool
}

func (f Function) IsExpr() {}

func (f Function) WriteSQL(w io.Writer, d *Dialect) error {
	name := f.Name.text()
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		s, err := ToSQL(a, d)
		if err != nil {
			return err
		}
		args[i] = s
	}
	if t, ok := d.Transforms[name]; ok {
		return writeString(w, t.Transform(name, args))
	}
	if d.QuoteFunctions && d.IsBuiltin(name) {
		if err := f.Name.WriteSQL(w, d); err != nil {
			return err
		}
	} else {
		if err := writeString(w, name); err != nil {
			return err
		}
	}
	if err := writeString(w, "("); err != nil {
		return err
	}
	if f.Distinct {
		if err := writeString(w, "DISTINCT "); err != nil {
			return err
		}
	}
	if err := writeString(w, strings.Join(args, ", ")); err != nil {
		return err
	}
	return writeString(w, ")")
}

// FunctionArg is one argument of a function or table-function call.
type FunctionArg interface {
	Node
	isFunctionArg()
}

func (UnnamedArg) isFunctionArg() {}
func (NamedArg) isFunctionArg()   {}

// UnnamedArg is a positional argument.
type UnnamedArg struct {
	Arg Expr
}

func (a UnnamedArg) WriteSQL(w io.Writer, d *Dialect) error {
	return a.Arg.WriteSQL(w, d)
}

// NamedArg is `name => value`.
type NamedArg struct {
	Name Ident
	Arg  Expr
}

func (a NamedArg) WriteSQL(w io.Writer, d *Dialect) error {
	if err := a.Name.WriteSQL(w, d); err != nil {
		return err
	}
	if err := writeString(w, " => "); err != nil {
		return err
	}
	return a.Arg.WriteSQL(w, d)
}
