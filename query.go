package sqlgen

import "io"

// Query is the most complete variant of a SELECT expression, optionally
// including WITH, set operations, and the trailing ORDER BY / LIMIT /
// OFFSET / FETCH / row-lock clauses. Those trailing clauses belong to the
// outermost level only; operands nested inside a set-operation chain never
// carry them (the tree shape enforces this, not a runtime check).
type Query struct {
	With    *With
	Body    SetExpr
	OrderBy []OrderByExpr
	Limit   Expr
	Offset  *Offset
	Fetch   *Fetch
	Lock    LockType
}

func (q *Query) WriteSQL(w io.Writer, d *Dialect) error {
	if q.With != nil {
		if err := q.With.WriteSQL(w, d); err != nil {
			return err
		}
		if err := writeString(w, " "); err != nil {
			return err
		}
	}
	if err := q.Body.WriteSQL(w, d); err != nil {
		return err
	}
	if len(q.OrderBy) > 0 {
		if err := writeString(w, " ORDER BY "); err != nil {
			return err
		}
		if err := writeJoined(w, d, q.OrderBy); err != nil {
			return err
		}
	}
	if q.Limit != nil {
		if err := writeString(w, " LIMIT "); err != nil {
			return err
		}
		if err := q.Limit.WriteSQL(w, d); err != nil {
			return err
		}
	}
	if q.Offset != nil {
		if err := writeString(w, " "); err != nil {
			return err
		}
		if err := q.Offset.WriteSQL(w, d); err != nil {
			return err
		}
	}
	if q.Fetch != nil {
		if err := writeString(w, " "); err != nil {
			return err
		}
		if err := q.Fetch.WriteSQL(w, d); err != nil {
			return err
		}
	}
	if q.Lock != LockNone {
		if err := writeString(w, " "); err != nil {
			return err
		}
		if err := q.Lock.WriteSQL(w, d); err != nil {
			return err
		}
	}
	return nil
}

// SetExpr is a query-body node: a bare SELECT, a parenthesized subquery, a
// set operation over two bodies, or a literal VALUES list. The variant set
// is closed; renderers switch exhaustively over it.
type SetExpr interface {
	Node
	isSetExpr()
}

func (*Select) isSetExpr()       {}
func (*SubQuery) isSetExpr()     {}
func (*SetOperation) isSetExpr() {}
func (Values) isSetExpr()        {}

// SubQuery is a parenthesized subquery used as a query body, which may
// carry further set operations and its own ORDER BY / LIMIT. It always
// wraps its own output in parentheses; every other body variant leaves
// parenthesization to the containing context.
type SubQuery struct {
	Query *Query
}

func (s *SubQuery) WriteSQL(w io.Writer, d *Dialect) error {
	if err := writeString(w, "("); err != nil {
		return err
	}
	if err := s.Query.WriteSQL(w, d); err != nil {
		return err
	}
	return writeString(w, ")")
}

// SetOperation combines two query bodies with UNION, EXCEPT or INTERSECT.
// Operands are themselves SetExprs, so chains associate through nesting.
type SetOperation struct {
	Op    SetOperator
	All   bool
	Left  SetExpr
	Right SetExpr
}

func (s *SetOperation) WriteSQL(w io.Writer, d *Dialect) error {
	if err := s.Left.WriteSQL(w, d); err != nil {
		return err
	}
	if err := writeString(w, " "); err != nil {
		return err
	}
	if err := s.Op.WriteSQL(w, d); err != nil {
		return err
	}
	if s.All {
		if err := writeString(w, " ALL"); err != nil {
			return err
		}
	}
	if err := writeString(w, " "); err != nil {
		return err
	}
	return s.Right.WriteSQL(w, d)
}

// SetOperator is the binary operator of a SetOperation.
type SetOperator int

const (
	Union SetOperator = iota
	Except
	Intersect
)

func (op SetOperator) WriteSQL(w io.Writer, _ *Dialect) error {
	switch op {
	case Union:
		return writeString(w, "UNION")
	case Except:
		return writeString(w, "EXCEPT")
	case Intersect:
		return writeString(w, "INTERSECT")
	}
	return writef(w, "SetOperator(%d)", int(op))
}

// With is the WITH clause introducing common table expressions.
type With struct {
	Recursive bool
	CTEs      []Cte
}

func (wc *With) WriteSQL(w io.Writer, d *Dialect) error {
	if err := writeString(w, "WITH "); err != nil {
		return err
	}
	if wc.Recursive {
		if err := writeString(w, "RECURSIVE "); err != nil {
			return err
		}
	}
	return writeJoined(w, d, wc.CTEs)
}

// Cte is a single common table expression:
// `alias [(col1, col2, ...)] AS ( query ) [FROM ident]`.
// The alias column list, when present, replaces the names of the columns
// returned by the query; the count is deliberately not checked against the
// query's projection.
type Cte struct {
	Alias TableAlias
	Query *Query
	From  *Ident
}

func (c Cte) WriteSQL(w io.Writer, d *Dialect) error {
	if err := c.Alias.WriteSQL(w, d); err != nil {
		return err
	}
	if err := writeString(w, " AS ("); err != nil {
		return err
	}
	if err := c.Query.WriteSQL(w, d); err != nil {
		return err
	}
	if err := writeString(w, ")"); err != nil {
		return err
	}
	if c.From != nil {
		if err := writeString(w, " FROM "); err != nil {
			return err
		}
		return c.From.WriteSQL(w, d)
	}
	return nil
}

// OrderByExpr is one ORDER BY term. Absent Asc or NullsFirst options
// render nothing, leaving the engine default in effect.
type OrderByExpr struct {
	Expr       Expr
	Asc        *bool
	NullsFirst *bool
}

func (o OrderByExpr) WriteSQL(w io.Writer, d *Dialect) error {
	if err := o.Expr.WriteSQL(w, d); err != nil {
		return err
	}
	if o.Asc != nil {
		kw := " DESC"
		if *o.Asc {
			kw = " ASC"
		}
		if err := writeString(w, kw); err != nil {
			return err
		}
	}
	if o.NullsFirst != nil {
		kw := " NULLS LAST"
		if *o.NullsFirst {
			kw = " NULLS FIRST"
		}
		if err := writeString(w, kw); err != nil {
			return err
		}
	}
	return nil
}

// Offset is `OFFSET <value> [ ROW | ROWS ]`.
type Offset struct {
	Value Expr
	Rows  OffsetRows
}

func (o Offset) WriteSQL(w io.Writer, d *Dialect) error {
	if err := writeString(w, "OFFSET "); err != nil {
		return err
	}
	if err := o.Value.WriteSQL(w, d); err != nil {
		return err
	}
	return o.Rows.WriteSQL(w, d)
}

// OffsetRows is the unit keyword after `OFFSET <value>`. Omitting it is a
// non-standard MySQL quirk the tree accepts.
type OffsetRows int

const (
	OffsetRowsNone OffsetRows = iota
	OffsetRow
	OffsetRowsKeyword
)

func (r OffsetRows) WriteSQL(w io.Writer, _ *Dialect) error {
	switch r {
	case OffsetRow:
		return writeString(w, " ROW")
	case OffsetRowsKeyword:
		return writeString(w, " ROWS")
	}
	return nil
}

// Fetch is the standard row-cap clause placed after ORDER BY:
// `FETCH FIRST [<quantity> [PERCENT]] ROWS { ONLY | WITH TIES }`.
type Fetch struct {
	WithTies bool
	Percent  bool
	Quantity Expr
}

func (f Fetch) WriteSQL(w io.Writer, d *Dialect) error {
	extension := "ONLY"
	if f.WithTies {
		extension = "WITH TIES"
	}
	if f.Quantity == nil {
		return writef(w, "FETCH FIRST ROWS %s", extension)
	}
	if err := writeString(w, "FETCH FIRST "); err != nil {
		return err
	}
	if err := f.Quantity.WriteSQL(w, d); err != nil {
		return err
	}
	if f.Percent {
		if err := writeString(w, " PERCENT"); err != nil {
			return err
		}
	}
	return writef(w, " ROWS %s", extension)
}

// LockType is the trailing row-lock clause of a query.
type LockType int

const (
	LockNone LockType = iota
	LockShare
	LockUpdate
)

func (l LockType) WriteSQL(w io.Writer, _ *Dialect) error {
	switch l {
	case LockShare:
		return writeString(w, "FOR SHARE")
	case LockUpdate:
		return writeString(w, "FOR UPDATE")
	}
	return nil
}
