package sqlgen

import "testing"

func TestSelect_IdempotentAbsence(t *testing.T) {
	// No DISTINCT, no TOP, empty FROM, no WHERE/GROUP BY/HAVING: exactly
	// SELECT plus the projection list, no extraneous spaces.
	s := &Select{Projection: projection("a", "b")}
	got := mustSQL(t, s, bare)
	if got != "SELECT a, b" {
		t.Errorf("SQL = %q, want %q", got, "SELECT a, b")
	}
}

func TestSelect_AllClauses(t *testing.T) {
	s := &Select{
		Distinct:   true,
		Top:        &Top{Quantity: Number{Text: "10"}},
		Projection: projection("a"),
		Into: &SelectInto{
			Temporary: true,
			Table:     true,
			Name:      name("tmp"),
		},
		From:      from("t"),
		Selection: call("pred", Ident{Value: "a"}),
		GroupBy:   []Expr{Ident{Value: "a"}, Ident{Value: "b"}},
		Having:    call("agg_pred", Ident{Value: "b"}),
	}
	want := "SELECT DISTINCT TOP (10) a INTO TEMPORARY TABLE tmp FROM t" +
		" WHERE pred(a) GROUP BY a, b HAVING agg_pred(b)"
	got := mustSQL(t, s, bare)
	if got != want {
		t.Errorf("SQL = %q, want %q", got, want)
	}
}

func TestSelectItem_Variants(t *testing.T) {
	tests := []struct {
		name string
		item SelectItem
		want string
	}{
		{"Unnamed", UnnamedExpr{Expr: Ident{Value: "a"}}, "a"},
		{
			"Aliased",
			ExprWithAlias{Expr: Ident{Value: "a"}, Alias: Ident{Value: "b"}},
			"a AS b",
		},
		{"QualifiedWildcard", QualifiedWildcard{Prefix: name("s", "t")}, "s.t.*"},
		{"Wildcard", Wildcard{}, "*"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustSQL(t, tt.item, bare)
			if got != tt.want {
				t.Errorf("SQL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTop_Shapes(t *testing.T) {
	tests := []struct {
		name string
		top  Top
		want string
	}{
		{"Quantity", Top{Quantity: Number{Text: "5"}}, "TOP (5)"},
		{"Percent", Top{Quantity: Number{Text: "10"}, Percent: true}, "TOP (10) PERCENT"},
		{
			"PercentWithTies",
			Top{Quantity: Number{Text: "10"}, Percent: true, WithTies: true},
			"TOP (10) PERCENT WITH TIES",
		},
		{"Bare", Top{}, "TOP"},
		{"BareWithTies", Top{WithTies: true}, "TOP WITH TIES"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustSQL(t, tt.top, bare)
			if got != tt.want {
				t.Errorf("SQL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTableFactor_Variants(t *testing.T) {
	alias := &TableAlias{Name: Ident{Value: "a"}}
	tests := []struct {
		name   string
		factor TableFactor
		want   string
	}{
		{"Plain", Table{Name: name("t")}, "t"},
		{"Aliased", Table{Name: name("t"), Alias: alias}, "t AS a"},
		{
			"TableValuedFunction",
			Table{Name: name("generate_series"), Args: []FunctionArg{
				UnnamedArg{Arg: Number{Text: "1"}},
				UnnamedArg{Arg: Number{Text: "10"}},
			}},
			"generate_series(1, 10)",
		},
		{
			// nil args is a plain table; an empty non-nil slice is a
			// zero-argument call.
			"EmptyArgCall",
			Table{Name: name("now_rows"), Args: []FunctionArg{}},
			"now_rows()",
		},
		{
			"WithHints",
			Table{Name: name("t"), Alias: alias, WithHints: []Expr{Ident{Value: "NOLOCK"}}},
			"t AS a WITH (NOLOCK)",
		},
		{
			"Derived",
			Derived{SubQuery: &Query{Body: selectCols("t", "x")}, Alias: alias},
			"(SELECT x FROM t) AS a",
		},
		{
			"LateralDerived",
			Derived{Lateral: true, SubQuery: &Query{Body: selectCols("t", "x")}},
			"LATERAL (SELECT x FROM t)",
		},
		{
			"TableFunction",
			TableFunction{Expr: call("f", Number{Text: "1"}), Alias: alias},
			"TABLE(f(1)) AS a",
		},
		{
			"Unnest",
			Unnest{ArrayExpr: Ident{Value: "arr"}, Alias: alias},
			"UNNEST(arr) AS a",
		},
		{
			"UnnestWithOffset",
			Unnest{
				ArrayExpr:       Ident{Value: "arr"},
				Alias:           alias,
				WithOffset:      true,
				WithOffsetAlias: &Ident{Value: "pos"},
			},
			"UNNEST(arr) AS a WITH OFFSET AS pos",
		},
		{
			"NestedJoin",
			&NestedJoin{TableWithJoins: TableWithJoins{
				Relation: Table{Name: name("x")},
				Joins: []Join{{
					Relation:   Table{Name: name("y")},
					Op:         JoinInner,
					Constraint: NaturalConstraint{},
				}},
			}},
			"(x NATURAL JOIN y)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustSQL(t, tt.factor, bare)
			if got != tt.want {
				t.Errorf("SQL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJoin_OperatorsAndConstraints(t *testing.T) {
	rel := Table{Name: name("u")}
	onX := OnConstraint{Expr: Ident{Value: "x"}}
	tests := []struct {
		name string
		join Join
		want string
	}{
		{"InnerOn", Join{Relation: rel, Op: JoinInner, Constraint: onX}, " JOIN u ON x"},
		{"LeftOn", Join{Relation: rel, Op: JoinLeftOuter, Constraint: onX}, " LEFT JOIN u ON x"},
		{"RightOn", Join{Relation: rel, Op: JoinRightOuter, Constraint: onX}, " RIGHT JOIN u ON x"},
		{"FullOn", Join{Relation: rel, Op: JoinFullOuter, Constraint: onX}, " FULL JOIN u ON x"},
		{
			"Using",
			Join{Relation: rel, Op: JoinInner, Constraint: UsingConstraint{
				Columns: []Ident{{Value: "a"}, {Value: "b"}},
			}},
			" JOIN u USING(a, b)",
		},
		{
			"NaturalLeft",
			Join{Relation: rel, Op: JoinLeftOuter, Constraint: NaturalConstraint{}},
			" NATURAL LEFT JOIN u",
		},
		{"Unconstrained", Join{Relation: rel, Op: JoinInner}, " JOIN u"},
		{"Cross", Join{Relation: rel, Op: JoinCross}, " CROSS JOIN u"},
		{"CrossApply", Join{Relation: rel, Op: JoinCrossApply}, " CROSS APPLY u"},
		{"OuterApply", Join{Relation: rel, Op: JoinOuterApply}, " OUTER APPLY u"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustSQL(t, tt.join, bare)
			if got != tt.want {
				t.Errorf("SQL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTableWithJoins_ChainsLeftToRight(t *testing.T) {
	twj := TableWithJoins{
		Relation: Table{Name: name("a")},
		Joins: []Join{
			{
				Relation:   Table{Name: name("b")},
				Op:         JoinInner,
				Constraint: OnConstraint{Expr: Ident{Value: "p"}},
			},
			{Relation: Table{Name: name("c")}, Op: JoinCross},
		},
	}
	want := "a JOIN b ON p CROSS JOIN c"
	got := mustSQL(t, twj, bare)
	if got != want {
		t.Errorf("SQL = %q, want %q", got, want)
	}
}

func TestValues_Rows(t *testing.T) {
	v := Values{
		{Number{Text: "1"}, SingleQuotedString("a")},
		{Number{Text: "2"}, SingleQuotedString("b")},
	}
	want := "VALUES (1, 'a'), (2, 'b')"
	got := mustSQL(t, v, bare)
	if got != want {
		t.Errorf("SQL = %q, want %q", got, want)
	}
}

func TestLateralView_Rendering(t *testing.T) {
	s := &Select{
		Projection: projection("x"),
		From:       from("t"),
		LateralViews: []LateralView{{
			Expr:       call("explode", Ident{Value: "arr"}),
			Name:       name("exploded"),
			ColAliases: []Ident{{Value: "item"}},
			Outer:      true,
		}},
	}
	want := "SELECT x FROM t LATERAL VIEW OUTER explode(arr) exploded AS item"
	got := mustSQL(t, s, bare)
	if got != want {
		t.Errorf("SQL = %q, want %q", got, want)
	}
}
