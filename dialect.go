package sqlgen

// Dialect parameterizes how one tree renders for a specific target engine.
// It is immutable once constructed and safe to share across concurrent
// render calls; rendering only ever reads it.
//
// The zero value renders with no identifier quoting, no recognized
// builtins and no transforms.
type Dialect struct {
	// QuoteStyle is the identifier quote character, or 0 for no quoting.
	// Valid styles are the single quote, double quote, backtick, and
	// opening square bracket (closed with a bracket).
	QuoteStyle rune

	// QuoteFunctions quotes recognized builtin function names with the
	// identifier quote style. Which names a profile recognizes, and
	// whether it sets this flag, is per-engine data; the shipped profiles
	// define the behavior.
	QuoteFunctions bool

	// Functions is the set of function names the target engine knows as
	// builtins.
	Functions map[string]struct{}

	// Transforms maps a function name to the rewrite applied at the call
	// render site. Lookup is by exact name; an unregistered name means no
	// rewrite.
	Transforms map[string]FunctionTransform
}

// IsBuiltin reports whether the engine recognizes name as a builtin
// function. Lookup is case-sensitive as stored.
func (d *Dialect) IsBuiltin(name string) bool {
	_, ok := d.Functions[name]
	return ok
}

// FunctionTransform rewrites a function call into replacement SQL text,
// given the original name and the already-rendered argument strings. It is
// how a dialect emulates a function its engine lacks without changing the
// tree or the generic call renderer.
type FunctionTransform interface {
	Transform(name string, args []string) string
}

// TransformFunc adapts a plain function to the FunctionTransform
// interface.
type TransformFunc func(name string, args []string) string

func (f TransformFunc) Transform(name string, args []string) string {
	return f(name, args)
}

func functionSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
