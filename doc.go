// Package sqlgen represents parsed SQL statements as an immutable syntax
// tree and renders that tree back to syntactically valid text for a chosen
// target dialect.
//
// # Basic Usage
//
// A caller holds a root *Query produced by a parser and a *Dialect value,
// and asks the query to render:
//
//	q := &sqlgen.Query{
//		Body: &sqlgen.Select{
//			Projection: []sqlgen.SelectItem{sqlgen.Wildcard{}},
//			From: []sqlgen.TableWithJoins{
//				{Relation: sqlgen.Table{Name: sqlgen.ObjectName{{Value: "users"}}}},
//			},
//		},
//	}
//	sql, err := sqlgen.ToSQL(q, sqlgen.Postgres())
//	// sql: SELECT * FROM "users"
//
// Any node can render on its own, so partial fragments work the same way.
//
// # Dialects
//
// A Dialect bundles an identifier quote style, the set of function names
// the engine recognizes as builtins, a flag controlling whether recognized
// names render quoted, and a registry of function transforms. Transforms
// let one target emulate a function its engine lacks by rewriting the call
// into an equivalent expression; under the SQLite dialect a floor(x) call
// renders as round(x - 0.5).
//
// Named constructors are provided per engine (DataFusion, SQLite,
// Postgres, MySQL, MSSQL); a Dialect can also be assembled field by field.
// Dialect values are read-only after construction and safe to share across
// concurrent render calls.
//
// # Scope
//
// The package renders trees; it does not parse SQL, evaluate queries, or
// validate semantics. Structurally well-formed but semantically unchecked
// trees (a CTE alias column count that disagrees with its query, an
// interval with inverted field bounds) render faithfully.
package sqlgen
