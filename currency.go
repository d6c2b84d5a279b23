package monetize

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"sort"
)

//go:generate go run scripts/currency/codegen.go

// Currency type represents a currency in the global financial system.
// The zero value is [XXX], which indicates an unknown currency.
//
// Currency is implemented as an integer index into in-memory arrays that
// store properties defined by [ISO 4217], such as the code and subunit
// ratio, together with the display conventions the parser relies on:
// the symbol, the decimal mark, and the thousands separator.
// This design ensures safe concurrency for multiple goroutines accessing
// the same Currency value.
//
// When persisting a currency value, use the alphabetic code returned by
// the [Currency.Code] method, rather than the integer index, as mapping between
// index and a particular currency may change in future versions.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type Currency uint8

// ErrUnknownCurrency is returned when a currency code or symbol does not
// resolve to a registered currency.
// Use [errors.Is] to test for it, as returned errors carry extra context.
var ErrUnknownCurrency = errors.New("unknown currency")

// symbScanOrder lists currencies with a non-empty symbol, longest symbol
// first, so that a scan over the alternation is longest-match-safe
// ("HK$" wins over "$").
var symbScanOrder []Currency

// codeBlacklist contains 2-3 letter uppercase runs that look like ISO codes
// but are really prefixes of multi-character symbols, such as "HK" (from
// "HK$"), "NT" (from "NT$"), or "RM" (the whole MYR symbol).
// Mixed-case symbols contribute both spellings: "KSh" adds "KS" and "KSH".
var codeBlacklist = make(map[string]bool)

func init() {
	for i := range codeLookup {
		c := Currency(i)
		sym := c.Symbol()
		if sym == "" {
			continue
		}
		symbScanOrder = append(symbScanOrder, c)
		for _, run := range []string{leadingUpperRun(sym), leadingLetterRun(sym)} {
			if len(run) < 2 || len(run) > 3 {
				continue
			}
			if _, err := ParseCurr(run); err != nil {
				codeBlacklist[run] = true
			}
		}
	}
	sort.Slice(symbScanOrder, func(i, j int) bool {
		a, b := symbScanOrder[i], symbScanOrder[j]
		if len(a.Symbol()) != len(b.Symbol()) {
			return len(a.Symbol()) > len(b.Symbol())
		}
		return a.Code() < b.Code()
	})
}

// leadingUpperRun returns the leading run of uppercase ASCII letters in s.
func leadingUpperRun(s string) string {
	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		i++
	}
	return s[:i]
}

// leadingLetterRun returns the leading run of ASCII letters in s, uppercased.
func leadingLetterRun(s string) string {
	run := make([]byte, 0, 4)
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b >= 'A' && b <= 'Z':
			run = append(run, b)
		case b >= 'a' && b <= 'z':
			run = append(run, b-'a'+'A')
		default:
			return string(run)
		}
	}
	return string(run)
}

// ParseCurr converts a string to currency.
// The input string must be in one of the following formats:
//
//	USD
//	usd
//	840
//
// ParseCurr returns an error if the string does not represent a valid currency code.
func ParseCurr(curr string) (Currency, error) {
	c, ok := currLookup[curr]
	if !ok {
		return XXX, ErrUnknownCurrency
	}
	return c, nil
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

// WrapCurr resolves a possibly empty currency code against a default.
// An empty code resolves to the default currency; a non-empty code is
// parsed with [ParseCurr].
// WrapCurr returns an error if the code is not registered, or if both the
// code and the default are absent ([XXX]).
func WrapCurr(curr string, def Currency) (Currency, error) {
	if curr == "" {
		if def == XXX {
			return XXX, fmt.Errorf("no currency given: %w", ErrUnknownCurrency)
		}
		return def, nil
	}
	c, err := ParseCurr(curr)
	if err != nil {
		return XXX, fmt.Errorf("wrapping %q: %w", curr, err)
	}
	return c, nil
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the Currency value.
// See also method [Currency.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// Code returns the [3-letter code] assigned to the currency by the ISO 4217 standard.
// This code is a unique identifier of the currency and is used in
// international finance and commerce.
// This method always returns a valid code.
//
// [3-letter code]: https://en.wikipedia.org/wiki/ISO_4217#National_currencies
func (c Currency) Code() string {
	return codeLookup[c]
}

// Num returns the [3-digit code] assigned to the currency by the ISO 4217 standard.
//
// [3-digit code]: https://en.wikipedia.org/wiki/ISO_4217#Numeric_codes
func (c Currency) Num() string {
	return numLookup[c]
}

// Symbol returns the currency sign customarily written next to amounts,
// for example "$" for [USD], "€" for [EUR], or "HK$" for [HKD].
// The symbol may be empty, as it is for [XXX].
func (c Currency) Symbol() string {
	return symbLookup[c]
}

// DecimalMark returns the character separating the integer and fractional
// parts of an amount in the currency's home convention, for example "." for
// [USD] and "," for [EUR].
func (c Currency) DecimalMark() string {
	return decsLookup[c]
}

// ThousandsSep returns the character grouping integer digits of an amount
// in the currency's home convention, for example "," for [USD], "." for
// [EUR], and "'" for [CHF].
// The thousands separator is never equal to the decimal mark.
func (c Currency) ThousandsSep() string {
	return thouLookup[c]
}

// SubunitToUnit returns the number of minor units per major unit of the
// currency: 100 cents per US dollar, 1000 fils per Bahraini dinar, 1 for
// currencies without minor units, such as the Japanese yen.
func (c Currency) SubunitToUnit() int {
	return subuLookup[c]
}

// Scale returns the number of digits after the decimal point required for
// representing the minor unit of a currency.
// It is derived from [Currency.SubunitToUnit]:
//   - a ratio of 1 gives a scale of 0, as for the [Japanese Yen];
//   - a ratio of 100 gives a scale of 2, as for the [US Dollar];
//   - a ratio of 1000 gives a scale of 3, as for the [Omani Rial].
//
// [Japanese Yen]: https://en.wikipedia.org/wiki/Japanese_yen
// [US Dollar]: https://en.wikipedia.org/wiki/United_States_dollar
// [Omani Rial]: https://en.wikipedia.org/wiki/Omani_rial
func (c Currency) Scale() int {
	n := 0
	for s := subuLookup[c]; s >= 10; s /= 10 {
		n++
	}
	return n
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseCurr].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a 3-letter code.
// See also method [Currency.Code].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 5)
	text = append(text, '"')
	text = append(text, c.Code()...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// MarshalText always returns a 3-letter code.
// See also method [Currency.Code].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (c *Currency) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*c, err = ParseCurr(value)
	case []byte:
		*c, err = ParseCurr(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", XXX, NullCurrency{}, XXX)
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, XXX, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (c Currency) Value() (driver.Value, error) {
	return c.Code(), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | USD     | Currency        |
//	| %q         | "USD"   | Quoted currency |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	// Currency code
	curr := c.Code()
	currlen := len(curr)

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + currlen + tquote
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, width)
	pos := width - 1

	// Trailing spaces
	for range tspaces {
		buf[pos] = ' '
		pos--
	}

	// Closing quote
	for range tquote {
		buf[pos] = '"'
		pos--
	}

	// Currency code
	for i := range currlen {
		buf[pos] = curr[currlen-i-1]
		pos--
	}

	// Opening quote
	for range lquote {
		buf[pos] = '"'
		pos--
	}

	// Leading spaces
	for range lspaces {
		buf[pos] = ' '
		pos--
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(monetize.Currency="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// NullCurrency represents a currency that can be null.
// Its zero value is null.
// NullCurrency is not thread-safe.
type NullCurrency struct {
	Currency Currency
	Valid    bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Currency.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullCurrency) Scan(value any) error {
	if value == nil {
		n.Currency = XXX
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Currency.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// See also method [Currency.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullCurrency) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Currency.Value()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Currency.UnmarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullCurrency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		n.Currency = XXX
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Currency.UnmarshalJSON(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Currency.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullCurrency) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Currency.MarshalJSON()
}
