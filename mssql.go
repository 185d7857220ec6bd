package sqlgen

// MSSQL returns a pass-through SQL Server dialect. Identifiers quote with
// square brackets; calls are emitted unmodified.
func MSSQL() *Dialect {
	return &Dialect{
		QuoteStyle: '[',
		Functions: functionSet(
			"abs",
			"ceiling",
			"coalesce",
			"concat",
			"datepart",
			"floor",
			"getdate",
			"isnull",
			"len",
			"lower",
			"ltrim",
			"nullif",
			"power",
			"rand",
			"round",
			"rtrim",
			"sign",
			"sqrt",
			"substring",
			"sysdatetime",
			"trim",
			"upper",
		),
	}
}
