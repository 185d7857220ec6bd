package sqlgen

import (
	"io"
	"strings"
)

// Number is a numeric literal kept as decimal text. Long marks the `L`
// long-literal suffix.
type Number struct {
	Text string
	Long bool
}

func (v Number) IsExpr() {}

func (v Number) WriteSQL(w io.Writer, _ *Dialect) error {
	if v.Long {
		return writef(w, "%sL", v.Text)
	}
	return writeString(w, v.Text)
}

// SingleQuotedString is `'string value'`. Embedded quotes are doubled
// (SQL standard escaping).
type SingleQuotedString string

func (v SingleQuotedString) IsExpr() {}

func (v SingleQuotedString) WriteSQL(w io.Writer, _ *Dialect) error {
	return writef(w, "'%s'", EscapeSingleQuoteString(string(v)))
}

// EscapedStringLiteral is the Postgres `e'string value'` form. It uses
// backslash escapes, a strategy distinct from quote doubling; the two must
// not be unified.
type EscapedStringLiteral string

func (v EscapedStringLiteral) IsExpr() {}

func (v EscapedStringLiteral) WriteSQL(w io.Writer, _ *Dialect) error {
	return writef(w, "E'%s'", EscapeEscapedString(string(v)))
}

// NationalStringLiteral is `N'string value'`.
type NationalStringLiteral string

func (v NationalStringLiteral) IsExpr() {}

func (v NationalStringLiteral) WriteSQL(w io.Writer, _ *Dialect) error {
	return writef(w, "N'%s'", string(v))
}

// HexStringLiteral is `X'hex value'`.
type HexStringLiteral string

func (v HexStringLiteral) IsExpr() {}

func (v HexStringLiteral) WriteSQL(w io.Writer, _ *Dialect) error {
	return writef(w, "X'%s'", string(v))
}

// DoubleQuotedString is `"string value"`.
type DoubleQuotedString string

func (v DoubleQuotedString) IsExpr() {}

func (v DoubleQuotedString) WriteSQL(w io.Writer, _ *Dialect) error {
	return writef(w, "\"%s\"", string(v))
}

// Boolean is a `true` or `false` literal.
type Boolean bool

func (v Boolean) IsExpr() {}

func (v Boolean) WriteSQL(w io.Writer, _ *Dialect) error {
	if v {
		return writeString(w, "true")
	}
	return writeString(w, "false")
}

// Null is the `NULL` literal.
type Null struct{}

func (Null) IsExpr() {}

func (Null) WriteSQL(w io.Writer, _ *Dialect) error {
	return writeString(w, "NULL")
}

// Placeholder is a prepared-statement argument marker such as `?` or `$1`,
// emitted verbatim.
type Placeholder string

func (v Placeholder) IsExpr() {}

func (v Placeholder) WriteSQL(w io.Writer, _ *Dialect) error {
	return writeString(w, string(v))
}

// Interval is an INTERVAL literal, roughly:
// `INTERVAL '<value>' [<leading_field> [(<leading_precision>)]]
// [TO <last_field>] [(<fractional_seconds_precision>)]`.
//
// The value is not validated, nor is the ordering of the leading and last
// fields; rejecting `HOUR TO YEAR` is the caller's job.
type Interval struct {
	Value                      Expr
	LeadingField               *DateTimeField
	LeadingPrecision           *uint64
	LastField                  *DateTimeField
	FractionalSecondsPrecision *uint64
}

func (v Interval) IsExpr() {}

func (v Interval) WriteSQL(w io.Writer, d *Dialect) error {
	// The SECOND (leading, fractional) shape. The parser guarantees the
	// last field is absent when the leading field is SECOND.
	if v.LeadingField != nil && *v.LeadingField == Second &&
		v.LeadingPrecision != nil && v.FractionalSecondsPrecision != nil {
		if err := writeString(w, "INTERVAL "); err != nil {
			return err
		}
		if err := v.Value.WriteSQL(w, d); err != nil {
			return err
		}
		return writef(w, " SECOND (%d, %d)", *v.LeadingPrecision, *v.FractionalSecondsPrecision)
	}
	if err := writeString(w, "INTERVAL "); err != nil {
		return err
	}
	if err := v.Value.WriteSQL(w, d); err != nil {
		return err
	}
	if v.LeadingField != nil {
		if err := writef(w, " %s", v.LeadingField.keyword()); err != nil {
			return err
		}
	}
	if v.LeadingPrecision != nil {
		if err := writef(w, " (%d)", *v.LeadingPrecision); err != nil {
			return err
		}
	}
	if v.LastField != nil {
		if err := writef(w, " TO %s", v.LastField.keyword()); err != nil {
			return err
		}
	}
	if v.FractionalSecondsPrecision != nil {
		if err := writef(w, " (%d)", *v.FractionalSecondsPrecision); err != nil {
			return err
		}
	}
	return nil
}

// DateTimeField is a temporal unit used by interval literals and EXTRACT.
type DateTimeField int

const (
	Year DateTimeField = iota
	Month
	Week
	Day
	Hour
	Minute
	Second
	Century
	Decade
	Dow
	Doy
	Epoch
	Isodow
	Isoyear
	Julian
	Microseconds
	Millenium
	Milliseconds
	Quarter
	Timezone
	TimezoneHour
	TimezoneMinute
)

func (f DateTimeField) keyword() string {
	switch f {
	case Year:
		return "YEAR"
	case Month:
		return "MONTH"
	case Week:
		return "WEEK"
	case Day:
		return "DAY"
	case Hour:
		return "HOUR"
	case Minute:
		return "MINUTE"
	case Second:
		return "SECOND"
	case Century:
		return "CENTURY"
	case Decade:
		return "DECADE"
	case Dow:
		return "DOW"
	case Doy:
		return "DOY"
	case Epoch:
		return "EPOCH"
	case Isodow:
		return "ISODOW"
	case Isoyear:
		return "ISOYEAR"
	case Julian:
		return "JULIAN"
	case Microseconds:
		return "MICROSECONDS"
	case Millenium:
		return "MILLENIUM"
	case Milliseconds:
		return "MILLISECONDS"
	case Quarter:
		return "QUARTER"
	case Timezone:
		return "TIMEZONE"
	case TimezoneHour:
		return "TIMEZONE_HOUR"
	case TimezoneMinute:
		return "TIMEZONE_MINUTE"
	default:
		return "YEAR"
	}
}

func (f DateTimeField) WriteSQL(w io.Writer, _ *Dialect) error {
	return writeString(w, f.keyword())
}

// EscapeQuotedString doubles every occurrence of quote in s. This is the
// SQL standard escaping used inside quoted identifiers and single-quoted
// string literals.
func EscapeQuotedString(s string, quote rune) string {
	var sb strings.Builder
	for _, c := range s {
		if c == quote {
			sb.WriteRune(quote)
			sb.WriteRune(quote)
		} else {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

// EscapeSingleQuoteString escapes s for use inside a single-quoted string
// literal.
func EscapeSingleQuoteString(s string) string {
	return EscapeQuotedString(s, '\'')
}

// EscapeEscapedString escapes s for use inside an `E'...'` literal:
// backslash escapes for quote, backslash, newline, tab and carriage
// return; everything else verbatim.
func EscapeEscapedString(s string) string {
	var sb strings.Builder
	for _, c := range s {
		switch c {
		case '\'':
			sb.WriteString(`\'`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteRune(c)
		}
	}
	return sb.String()
}
