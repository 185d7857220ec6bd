package sqlgen

// DataFusion returns the DataFusion dialect: double-quoted identifiers, a
// broad builtin set, and no transforms. The engine accepts the tree's
// function calls as written, so every call passes through unmodified.
func DataFusion() *Dialect {
	return &Dialect{
		QuoteStyle: '"',
		Functions: functionSet(
			"abs",
			"acos",
			"asin",
			"atan",
			"atan2",
			"ceil",
			"coalesce",
			"cos",
			"digest",
			"exp",
			"floor",
			"ln",
			"log",
			"log10",
			"log2",
			"power",
			"round",
			"signum",
			"sin",
			"sqrt",
			"tan",
			"trunc",
			"array",
			"ascii",
			"bit_length",
			"btrim",
			"character_length",
			"chr",
			"concat",
			"concat_ws",
			"date_part",
			"date_trunc",
			"date_bin",
			"initcap",
			"left",
			"lpad",
			"lower",
			"ltrim",
			"md5",
			"nullif",
			"octet_length",
			"random",
			"regexp_replace",
			"repeat",
			"replace",
			"reverse",
			"right",
			"rpad",
			"rtrim",
			"sha224",
			"sha256",
			"sha384",
			"sha512",
			"split_part",
			"starts_with",
			"strpos",
			"substr",
			"to_hex",
			"to_timestamp",
			"to_timestamp_millis",
			"to_timestamp_micros",
			"to_timestamp_seconds",
			"from_unixtime",
			"now",
			"translate",
			"trim",
			"upper",
			"regexp_match",
			"struct",
		),
	}
}
