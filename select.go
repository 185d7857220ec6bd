package sqlgen

import "io"

// Select is the restricted SELECT core (no CTEs, no ORDER BY): projection,
// FROM, WHERE, GROUP BY, HAVING. It appears either as the only body of a
// Query or as a set-operation operand. It never wraps itself in
// parentheses; containing contexts decide that.
type Select struct {
	Distinct     bool
	Top          *Top
	Projection   []SelectItem
	Into         *SelectInto
	From         []TableWithJoins
	LateralViews []LateralView
	Selection    Expr
	GroupBy      []Expr
	Having       Expr
}

func (s *Select) WriteSQL(w io.Writer, d *Dialect) error {
	if err := writeString(w, "SELECT"); err != nil {
		return err
	}
	if s.Distinct {
		if err := writeString(w, " DISTINCT"); err != nil {
			return err
		}
	}
	if s.Top != nil {
		if err := writeString(w, " "); err != nil {
			return err
		}
		if err := s.Top.WriteSQL(w, d); err != nil {
			return err
		}
	}
	if err := writeString(w, " "); err != nil {
		return err
	}
	if err := writeJoined(w, d, s.Projection); err != nil {
		return err
	}
	if s.Into != nil {
		if err := writeString(w, " "); err != nil {
			return err
		}
		if err := s.Into.WriteSQL(w, d); err != nil {
			return err
		}
	}
	if len(s.From) > 0 {
		if err := writeString(w, " FROM "); err != nil {
			return err
		}
		if err := writeJoined(w, d, s.From); err != nil {
			return err
		}
	}
	for _, lv := range s.LateralViews {
		if err := lv.WriteSQL(w, d); err != nil {
			return err
		}
	}
	if s.Selection != nil {
		if err := writeString(w, " WHERE "); err != nil {
			return err
		}
		if err := s.Selection.WriteSQL(w, d); err != nil {
			return err
		}
	}
	if len(s.GroupBy) > 0 {
		if err := writeString(w, " GROUP BY "); err != nil {
			return err
		}
		if err := writeJoined(w, d, s.GroupBy); err != nil {
			return err
		}
	}
	if s.Having != nil {
		if err := writeString(w, " HAVING "); err != nil {
			return err
		}
		if err := s.Having.WriteSQL(w, d); err != nil {
			return err
		}
	}
	return nil
}

// SelectItem is one item of the projection list.
type SelectItem interface {
	Node
	isSelectItem()
}

func (UnnamedExpr) isSelectItem()       {}
func (ExprWithAlias) isSelectItem()     {}
func (QualifiedWildcard) isSelectItem() {}
func (Wildcard) isSelectItem()          {}

// UnnamedExpr is an expression without an alias.
type UnnamedExpr struct {
	Expr Expr
}

func (it UnnamedExpr) WriteSQL(w io.Writer, d *Dialect) error {
	return it.Expr.WriteSQL(w, d)
}

// ExprWithAlias is `<expr> AS <alias>`.
type ExprWithAlias struct {
	Expr  Expr
	Alias Ident
}

func (it ExprWithAlias) WriteSQL(w io.Writer, d *Dialect) error {
	if err := it.Expr.WriteSQL(w, d); err != nil {
		return err
	}
	if err := writeString(w, " AS "); err != nil {
		return err
	}
	return it.Alias.WriteSQL(w, d)
}

// QualifiedWildcard is `alias.*` or `schema.table.*`.
type QualifiedWildcard struct {
	Prefix ObjectName
}

func (it QualifiedWildcard) WriteSQL(w io.Writer, d *Dialect) error {
	if err := it.Prefix.WriteSQL(w, d); err != nil {
		return err
	}
	return writeString(w, ".*")
}

// Wildcard is an unqualified `*`.
type Wildcard struct{}

func (Wildcard) WriteSQL(w io.Writer, _ *Dialect) error {
	return writeString(w, "*")
}

// Top is the MSSQL row cap preceding the projection list:
// `TOP (<quantity>) [PERCENT] [WITH TIES]`.
type Top struct {
	WithTies bool
	Percent  bool
	Quantity Expr
}

func (t Top) WriteSQL(w io.Writer, d *Dialect) error {
	if t.Quantity == nil {
		if t.WithTies {
			return writeString(w, "TOP WITH TIES")
		}
		return writeString(w, "TOP")
	}
	if err := writeString(w, "TOP ("); err != nil {
		return err
	}
	if err := t.Quantity.WriteSQL(w, d); err != nil {
		return err
	}
	if err := writeString(w, ")"); err != nil {
		return err
	}
	if t.Percent {
		if err := writeString(w, " PERCENT"); err != nil {
			return err
		}
	}
	if t.WithTies {
		return writeString(w, " WITH TIES")
	}
	return nil
}

// SelectInto is the `INTO [TEMPORARY] [UNLOGGED] [TABLE] <name>` target.
type SelectInto struct {
	Temporary bool
	Unlogged  bool
	Table     bool
	Name      ObjectName
}

func (si SelectInto) WriteSQL(w io.Writer, d *Dialect) error {
	if err := writeString(w, "INTO"); err != nil {
		return err
	}
	if si.Temporary {
		if err := writeString(w, " TEMPORARY"); err != nil {
			return err
		}
	}
	if si.Unlogged {
		if err := writeString(w, " UNLOGGED"); err != nil {
			return err
		}
	}
	if si.Table {
		if err := writeString(w, " TABLE"); err != nil {
			return err
		}
	}
	if err := writeString(w, " "); err != nil {
		return err
	}
	return si.Name.WriteSQL(w, d)
}

// LateralView is a Hive `LATERAL VIEW [OUTER] <expr> <name> [AS cols]`
// with optional column aliases. It renders its own leading space.
type LateralView struct {
	Expr       Expr
	Name       ObjectName
	ColAliases []Ident
	Outer      bool
}

func (lv LateralView) WriteSQL(w io.Writer, d *Dialect) error {
	if err := writeString(w, " LATERAL VIEW"); err != nil {
		return err
	}
	if lv.Outer {
		if err := writeString(w, " OUTER"); err != nil {
			return err
		}
	}
	if err := writeString(w, " "); err != nil {
		return err
	}
	if err := lv.Expr.WriteSQL(w, d); err != nil {
		return err
	}
	if err := writeString(w, " "); err != nil {
		return err
	}
	if err := lv.Name.WriteSQL(w, d); err != nil {
		return err
	}
	if len(lv.ColAliases) > 0 {
		if err := writeString(w, " AS "); err != nil {
			return err
		}
		return writeJoined(w, d, lv.ColAliases)
	}
	return nil
}

// Values is a literal row list: `VALUES (a, b), (c, d)`. Each row is
// wrapped in parentheses here; the rows themselves never self-wrap.
type Values [][]Expr

func (v Values) WriteSQL(w io.Writer, d *Dialect) error {
	if err := writeString(w, "VALUES "); err != nil {
		return err
	}
	for i, row := range v {
		if i > 0 {
			if err := writeString(w, ", "); err != nil {
				return err
			}
		}
		if err := writeString(w, "("); err != nil {
			return err
		}
		if err := writeJoined(w, d, row); err != nil {
			return err
		}
		if err := writeString(w, ")"); err != nil {
			return err
		}
	}
	return nil
}
