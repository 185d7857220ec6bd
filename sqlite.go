package sqlgen

import "fmt"

// SQLite returns the SQLite dialect: double-quoted identifiers, quoted
// builtin function names, and transforms emulating functions the embedded
// engine lacks. floor and ceil rewrite to round with a half offset; the
// finiteness predicates rewrite to membership tests against the sentinel
// text forms SQLite stores for non-finite doubles.
func SQLite() *Dialect {
	return &Dialect{
		QuoteStyle:     '"',
		QuoteFunctions: true,
		Functions: functionSet(
			"abs",
			"changes",
			"char",
			"coalesce",
			"format",
			"glob",
			"hex",
			"ifnull",
			"iif",
			"instr",
			"last_insert_rowid",
			"length",
			"like",
			"likelihood",
			"likely",
			"load_extension",
			"lower",
			"ltrim",
			"max",
			"min",
			"nullif",
			"printf",
			"quote",
			"random",
			"randomblob",
			"replace",
			"round",
			"rtrim",
			"sign",
			"soundex",
			"sqlite_compileoption_get",
			"sqlite_compileoption_used",
			"sqlite_offset",
			"sqlite_source_id",
			"sqlite_version",
			"substr",
			"substring",
			"total_changes",
			"trim",
			"typeof",
			"unicode",
			"unlikely",
			"upper",
			"zeroblob",
		),
		Transforms: map[string]FunctionTransform{
			"floor":    floorTransform{},
			"ceil":     ceilTransform{},
			"isnan":    isNaNTransform{},
			"isfinite": isFiniteTransform{},
		},
	}
}

type floorTransform struct{}

func (floorTransform) Transform(_ string, args []string) string {
	return fmt.Sprintf("round(%s - 0.5)", args[0])
}

type ceilTransform struct{}

func (ceilTransform) Transform(_ string, args []string) string {
	return fmt.Sprintf("round(%s + 0.5)", args[0])
}

type isNaNTransform struct{}

func (isNaNTransform) Transform(_ string, args []string) string {
	return fmt.Sprintf("%s IN ('NaN', '-NaN')", args[0])
}

type isFiniteTransform struct{}

func (isFiniteTransform) Transform(_ string, args []string) string {
	return fmt.Sprintf("%s NOT IN ('NaN', '-NaN', 'Inf', '-Inf')", args[0])
}
