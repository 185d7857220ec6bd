package sqlgen

// MySQL returns a pass-through MySQL/MariaDB dialect. Identifiers quote
// with backticks; calls are emitted unmodified.
func MySQL() *Dialect {
	return &Dialect{
		QuoteStyle: '`',
		Functions: functionSet(
			"abs",
			"ceil",
			"ceiling",
			"coalesce",
			"concat",
			"floor",
			"greatest",
			"ifnull",
			"least",
			"length",
			"lower",
			"ltrim",
			"now",
			"nullif",
			"pow",
			"power",
			"rand",
			"round",
			"rtrim",
			"sign",
			"sqrt",
			"substr",
			"substring",
			"trim",
			"truncate",
			"upper",
		),
	}
}
