package sqlgen

// Postgres returns a pass-through PostgreSQL dialect with double-quoted
// identifiers. The engine's builtin surface is broad enough that calls are
// emitted unmodified and unquoted.
func Postgres() *Dialect {
	return &Dialect{
		QuoteStyle: '"',
		Functions: functionSet(
			"abs",
			"ceil",
			"ceiling",
			"coalesce",
			"concat",
			"date_part",
			"date_trunc",
			"exp",
			"floor",
			"greatest",
			"least",
			"length",
			"lower",
			"ltrim",
			"now",
			"nullif",
			"power",
			"random",
			"round",
			"rtrim",
			"sign",
			"sqrt",
			"substr",
			"substring",
			"trim",
			"trunc",
			"upper",
		),
	}
}
