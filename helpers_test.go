package sqlgen

import "testing"

// bare is the zero-value dialect: no quoting, no builtins, no transforms.
var bare = &Dialect{}

func mustSQL(t *testing.T, n Node, d *Dialect) string {
	t.Helper()
	sql, err := ToSQL(n, d)
	if err != nil {
		t.Fatalf("ToSQL() error = %v", err)
	}
	return sql
}

func boolPtr(b bool) *bool { return &b }

func uintPtr(v uint64) *uint64 { return &v }

func fieldPtr(f DateTimeField) *DateTimeField { return &f }

func name(parts ...string) ObjectName {
	n := make(ObjectName, len(parts))
	for i, p := range parts {
		n[i] = Ident{Value: p}
	}
	return n
}

func projection(cols ...string) []SelectItem {
	items := make([]SelectItem, len(cols))
	for i, c := range cols {
		items[i] = UnnamedExpr{Expr: Ident{Value: c}}
	}
	return items
}

func from(table string) []TableWithJoins {
	return []TableWithJoins{{Relation: Table{Name: name(table)}}}
}

func selectCols(table string, cols ...string) *Select {
	return &Select{Projection: projection(cols...), From: from(table)}
}

func call(fn string, args ...Expr) Function {
	fnArgs := make([]FunctionArg, len(args))
	for i, a := range args {
		fnArgs[i] = UnnamedArg{Arg: a}
	}
	return Function{Name: name(fn), Args: fnArgs}
}
