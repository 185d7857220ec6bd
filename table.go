package sqlgen

import "io"

// TableWithJoins is one FROM-list entry: a base relation plus joins
// applied left to right.
type TableWithJoins struct {
	Relation TableFactor
	Joins    []Join
}

func (t TableWithJoins) WriteSQL(w io.Writer, d *Dialect) error {
	if err := t.Relation.WriteSQL(w, d); err != nil {
		return err
	}
	for _, j := range t.Joins {
		if err := j.WriteSQL(w, d); err != nil {
			return err
		}
	}
	return nil
}

// TableFactor is a relation in the FROM clause: a named table, a derived
// subquery, a table function, an UNNEST, or a parenthesized nested join.
type TableFactor interface {
	Node
	isTableFactor()
}

func (Table) isTableFactor()         {}
func (Derived) isTableFactor()       {}
func (TableFunction) isTableFactor() {}
func (Unnest) isTableFactor()        {}
func (*NestedJoin) isTableFactor()   {}

// Table is a named table, or a table-valued function call when Args is
// non-nil. A nil Args slice means a plain table name; a non-nil (possibly
// empty) slice renders a call with parentheses. WithHints carries MSSQL
// `WITH (NOLOCK)`-style hints.
type Table struct {
	Name      ObjectName
	Alias     *TableAlias
	Args      []FunctionArg
	WithHints []Expr
}

func (t Table) WriteSQL(w io.Writer, d *Dialect) error {
	if err := t.Name.WriteSQL(w, d); err != nil {
		return err
	}
	if t.Args != nil {
		if err := writeString(w, "("); err != nil {
			return err
		}
		if err := writeJoined(w, d, t.Args); err != nil {
			return err
		}
		if err := writeString(w, ")"); err != nil {
			return err
		}
	}
	if t.Alias != nil {
		if err := writeString(w, " AS "); err != nil {
			return err
		}
		if err := t.Alias.WriteSQL(w, d); err != nil {
			return err
		}
	}
	if len(t.WithHints) > 0 {
		if err := writeString(w, " WITH ("); err != nil {
			return err
		}
		if err := writeJoined(w, d, t.WithHints); err != nil {
			return err
		}
		return writeString(w, ")")
	}
	return nil
}

// Derived is a parenthesized subquery in the FROM clause, optionally
// LATERAL, with an optional alias. The parentheses are written here, never
// by the subquery itself.
type Derived struct {
	Lateral  bool
	SubQuery *Query
	Alias    *TableAlias
}

func (t Derived) WriteSQL(w io.Writer, d *Dialect) error {
	if t.Lateral {
		if err := writeString(w, "LATERAL "); err != nil {
			return err
		}
	}
	if err := writeString(w, "("); err != nil {
		return err
	}
	if err := t.SubQuery.WriteSQL(w, d); err != nil {
		return err
	}
	if err := writeString(w, ")"); err != nil {
		return err
	}
	if t.Alias != nil {
		if err := writeString(w, " AS "); err != nil {
			return err
		}
		return t.Alias.WriteSQL(w, d)
	}
	return nil
}

// TableFunction is `TABLE(<expr>) [AS <alias>]`.
type TableFunction struct {
	Expr  Expr
	Alias *TableAlias
}

func (t TableFunction) WriteSQL(w io.Writer, d *Dialect) error {
	if err := writeString(w, "TABLE("); err != nil {
		return err
	}
	if err := t.Expr.WriteSQL(w, d); err != nil {
		return err
	}
	if err := writeString(w, ")"); err != nil {
		return err
	}
	if t.Alias != nil {
		if err := writeString(w, " AS "); err != nil {
			return err
		}
		return t.Alias.WriteSQL(w, d)
	}
	return nil
}

// Unnest is `UNNEST(<array>) [AS alias] [WITH OFFSET [AS alias]]`.
type Unnest struct {
	ArrayExpr       Expr
	Alias           *TableAlias
	WithOffset      bool
	WithOffsetAlias *Ident
}

func (t Unnest) WriteSQL(w io.Writer, d *Dialect) error {
	if err := writeString(w, "UNNEST("); err != nil {
		return err
	}
	if err := t.ArrayExpr.WriteSQL(w, d); err != nil {
		return err
	}
	if err := writeString(w, ")"); err != nil {
		return err
	}
	if t.Alias != nil {
		if err := writeString(w, " AS "); err != nil {
			return err
		}
		if err := t.Alias.WriteSQL(w, d); err != nil {
			return err
		}
	}
	if t.WithOffset {
		if err := writeString(w, " WITH OFFSET"); err != nil {
			return err
		}
	}
	if t.WithOffsetAlias != nil {
		if err := writeString(w, " AS "); err != nil {
			return err
		}
		return t.WithOffsetAlias.WriteSQL(w, d)
	}
	return nil
}

// NestedJoin is a parenthesized join expression:
// `(foo <JOIN> bar [<JOIN> baz ...])`.
type NestedJoin struct {
	TableWithJoins TableWithJoins
}

func (t *NestedJoin) WriteSQL(w io.Writer, d *Dialect) error {
	if err := writeString(w, "("); err != nil {
		return err
	}
	if err := t.TableWithJoins.WriteSQL(w, d); err != nil {
		return err
	}
	return writeString(w, ")")
}

// TableAlias is `<name> [(col1, col2, ...)]`.
type TableAlias struct {
	Name    Ident
	Columns []Ident
}

func (a TableAlias) WriteSQL(w io.Writer, d *Dialect) error {
	if err := a.Name.WriteSQL(w, d); err != nil {
		return err
	}
	if len(a.Columns) > 0 {
		if err := writeString(w, " ("); err != nil {
			return err
		}
		if err := writeJoined(w, d, a.Columns); err != nil {
			return err
		}
		return writeString(w, ")")
	}
	return nil
}

// JoinOp classifies a join. CROSS and APPLY joins carry no constraint.
type JoinOp int

const (
	JoinInner JoinOp = iota
	JoinLeftOuter
	JoinRightOuter
	JoinFullOuter
	JoinCross
	JoinCrossApply
	JoinOuterApply
)

func (op JoinOp) keyword() string {
	switch op {
	case JoinLeftOuter:
		return "LEFT JOIN"
	case JoinRightOuter:
		return "RIGHT JOIN"
	case JoinFullOuter:
		return "FULL JOIN"
	case JoinCross:
		return "CROSS JOIN"
	case JoinCrossApply:
		return "CROSS APPLY"
	case JoinOuterApply:
		return "OUTER APPLY"
	default:
		return "JOIN"
	}
}

// Join applies one relation to the left-hand relation chain. It renders
// with a leading space so TableWithJoins can emit joins back to back.
type Join struct {
	Relation   TableFactor
	Op         JoinOp
	Constraint JoinConstraint
}

func (j Join) WriteSQL(w io.Writer, d *Dialect) error {
	if err := writeString(w, " "); err != nil {
		return err
	}
	switch j.Op {
	case JoinCross, JoinCrossApply, JoinOuterApply:
		if err := writeString(w, j.Op.keyword()+" "); err != nil {
			return err
		}
		return j.Relation.WriteSQL(w, d)
	}
	if _, ok := j.Constraint.(NaturalConstraint); ok {
		if err := writeString(w, "NATURAL "); err != nil {
			return err
		}
	}
	if err := writeString(w, j.Op.keyword()+" "); err != nil {
		return err
	}
	if err := j.Relation.WriteSQL(w, d); err != nil {
		return err
	}
	switch c := j.Constraint.(type) {
	case OnConstraint:
		if err := writeString(w, " ON "); err != nil {
			return err
		}
		return c.Expr.WriteSQL(w, d)
	case UsingConstraint:
		if err := writeString(w, " USING("); err != nil {
			return err
		}
		if err := writeJoined(w, d, c.Columns); err != nil {
			return err
		}
		return writeString(w, ")")
	}
	return nil
}

// JoinConstraint is the ON / USING / NATURAL qualifier of a join. A nil
// constraint means an unqualified join.
type JoinConstraint interface {
	isJoinConstraint()
}

func (OnConstraint) isJoinConstraint()      {}
func (UsingConstraint) isJoinConstraint()   {}
func (NaturalConstraint) isJoinConstraint() {}

// OnConstraint is `ON <predicate>`.
type OnConstraint struct {
	Expr Expr
}

// UsingConstraint is `USING(col1, col2, ...)`.
type UsingConstraint struct {
	Columns []Ident
}

// NaturalConstraint marks a NATURAL join; it renders as a prefix to the
// join keyword rather than a suffix.
type NaturalConstraint struct{}
