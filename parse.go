package monetize

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/govalues/decimal"
)

// ErrInvalidAmount is returned when the numeric text of an input cannot be
// read as a single amount: it contains more than two distinct delimiter
// characters, a hyphen outside a leading or trailing sign run, or digits
// that do not assemble into a valid decimal.
// Use [errors.Is] to test for it, as returned errors carry extra context.
var ErrInvalidAmount = errors.New("invalid amount")

// multipliers maps a magnitude exponent to its power of ten.
var multipliers = map[int]decimal.Decimal{
	3:  decimal.MustNew(1_000, 0),
	6:  decimal.MustNew(1_000_000, 0),
	9:  decimal.MustNew(1_000_000_000, 0),
	12: decimal.MustNew(1_000_000_000_000, 0),
}

// Parser converts free-form monetary strings to amounts.
// The zero value is a usable parser with no fallback currency and all
// heuristics disabled; inputs must then carry an explicit currency code.
// Parser values are cheap to copy, and copies with adjusted fields are the
// way to set per-call options.
//
// Parser is safe for concurrent use by multiple goroutines as long as its
// fields are not mutated concurrently.
type Parser struct {
	// Fallback is the currency assumed when the input carries neither a
	// recognizable code nor a symbol. [XXX] means no fallback, making such
	// inputs fail with [ErrUnknownCurrency].
	Fallback Currency

	// AssumeFromSymbol allows inferring the currency from a known currency
	// symbol when no 2-3 letter code is present in the input.
	AssumeFromSymbol bool

	// ExpectWholeSubunits assumes a single delimiter separates major from
	// minor units only if the digit run after it matches the currency's
	// fractional precision exactly, so "1,234,56" reads as 1234.56 euros.
	ExpectWholeSubunits bool

	// EnforceCurrencyDelimiters treats a single delimiter matching the
	// currency's thousands separator strictly as grouping, so "12,34"
	// reads as 1234 dollars rather than 12.34.
	EnforceCurrencyDelimiters bool
}

// DefaultParser is the parser used by the package-level parse functions:
// US dollars are assumed for currency-less inputs, and currency symbols
// are recognized.
var DefaultParser = Parser{Fallback: USD, AssumeFromSymbol: true}

// Parse converts a free-form monetary string to an amount using [DefaultParser].
// See method [Parser.Parse] for details.
func Parse(input string) (Amount, error) {
	return DefaultParser.Parse(input)
}

// ParseFallback is like [Parse] but assumes the given currency when the
// input carries neither a code nor a symbol.
// See method [Parser.ParseFallback] for details.
func ParseFallback(input string, fallback Currency) (Amount, error) {
	return DefaultParser.ParseFallback(input, fallback)
}

// MustParse is like [Parse] but panics if the input cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParse(input string) Amount {
	a, err := Parse(input)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", input, err))
	}
	return a
}

// ParseAll converts free-form monetary strings to amounts using [DefaultParser].
// See method [Parser.ParseAll] for details.
func ParseAll(inputs ...string) ([]Amount, error) {
	return DefaultParser.ParseAll(inputs...)
}

// Parse converts a free-form monetary string to an amount.
//
// The currency is resolved from an embedded 2-3 letter uppercase code
// ("USD 10"), a known symbol ("$10", if [Parser.AssumeFromSymbol] is
// enabled), or [Parser.Fallback].
// A trailing K, M, B, or T suffix multiplies the amount by the
// corresponding power of ten, so "1.5M" reads as 1500000.
// A leading or trailing run of hyphens negates the amount.
// Punctuation is disambiguated against the resolved currency's conventions,
// so "$1,234.56" and "€1.234,56" both read as 1234.56.
//
// Parse returns an error wrapping [ErrInvalidAmount] or [ErrUnknownCurrency]
// if the input is malformed; it never returns a partial result.
func (p Parser) Parse(input string) (Amount, error) {
	return p.ParseFallback(input, p.Fallback)
}

// ParseFallback is like [Parser.Parse] but assumes the given currency when
// the input carries neither a code nor a symbol, overriding [Parser.Fallback].
func (p Parser) ParseFallback(input string, fallback Currency) (Amount, error) {
	input = strings.TrimSpace(input)

	curr, err := p.resolveCurrency(input, fallback)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing %q: %w", input, err)
	}

	text, exp := extractMultiplier(input)
	text = normalizeText(text, curr)

	text, neg, err := extractSign(text)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing %q: %w", input, err)
	}
	text = trimStrayDelimiter(text)

	major, minor, err := p.extractMajorMinor(text, curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing %q: %w", input, err)
	}

	a, err := assemble(curr, major, minor, exp, neg)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing %q: %w", input, err)
	}
	return a, nil
}

// ParseAll converts free-form monetary strings to amounts.
// The first malformed input aborts the whole conversion; no partial results
// are returned.
func (p Parser) ParseAll(inputs ...string) ([]Amount, error) {
	amounts := make([]Amount, len(inputs))
	for i, input := range inputs {
		a, err := p.Parse(input)
		if err != nil {
			return nil, fmt.Errorf("input %v: %w", i, err)
		}
		amounts[i] = a
	}
	return amounts, nil
}

// resolveCurrency determines the currency of an input: an embedded code wins
// over a symbol, a symbol over the fallbacks.
// A detected code that is not registered fails rather than falling through,
// so "100 ZZZ" is reported as an unknown currency, not silently read as the
// fallback.
func (p Parser) resolveCurrency(input string, fallback Currency) (Currency, error) {
	if code := findCode(input); code != "" {
		c, err := ParseCurr(code)
		if err != nil {
			return XXX, fmt.Errorf("currency code %q: %w", code, err)
		}
		return c, nil
	}
	if p.AssumeFromSymbol {
		if c, ok := findSymbol(input); ok {
			return c, nil
		}
	}
	if fallback != XXX {
		return fallback, nil
	}
	if p.Fallback != XXX {
		return p.Fallback, nil
	}
	return XXX, fmt.Errorf("no currency in input and no fallback: %w", ErrUnknownCurrency)
}

// findCode returns the first 2-3 letter uppercase run in s, which is a
// candidate ISO code.
// A run listed in the symbol-prefix blacklist, such as "HK" or "RM", is
// discarded: it belongs to a symbol, not a code.
func findCode(s string) string {
	for i := 0; i < len(s); i++ {
		if !isUpper(s[i]) {
			continue
		}
		j := i + 1
		for j < len(s) && isUpper(s[j]) {
			j++
		}
		if n := j - i; n >= 2 && n <= 3 {
			if run := s[i:j]; !codeBlacklist[run] {
				return run
			}
			return ""
		}
		i = j
	}
	return ""
}

func isUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

// findSymbol scans s for any registered currency symbol.
// At each position, longer symbols are tried first, so "HK$" wins over "$".
func findSymbol(s string) (Currency, bool) {
	for i := 0; i < len(s); {
		for _, c := range symbScanOrder {
			if symbolAt(s, i, c.Symbol()) {
				return c, true
			}
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return XXX, false
}

// symbolAt reports whether sym occurs at byte offset i of s, ignoring case.
// A symbol edge that is a letter must not touch another letter, so "RM"
// does not match inside "FIRM" or "RMB".
func symbolAt(s string, i int, sym string) bool {
	j := i
	for _, sr := range sym {
		r, size := utf8.DecodeRuneInString(s[j:])
		if size == 0 || unicode.ToLower(r) != unicode.ToLower(sr) {
			return false
		}
		j += size
	}
	if first, _ := utf8.DecodeRuneInString(sym); unicode.IsLetter(first) && i > 0 {
		if prev, _ := utf8.DecodeLastRuneInString(s[:i]); unicode.IsLetter(prev) {
			return false
		}
	}
	if last, _ := utf8.DecodeLastRuneInString(sym); unicode.IsLetter(last) && j < len(s) {
		if next, _ := utf8.DecodeRuneInString(s[j:]); unicode.IsLetter(next) {
			return false
		}
	}
	return true
}

// extractMultiplier detects a magnitude suffix (K, M, B, or T, in any case)
// written directly after the last digit and removes it from the text.
// The suffix must be a whole word glued to the digits: "1.5M" carries one,
// while "1.5 million" and "45 kr." do not.
// It returns the text without the suffix and the power-of-ten exponent.
func extractMultiplier(text string) (string, int) {
	last := strings.LastIndexFunc(text, isDigitRune)
	if last < 0 {
		return text, 0
	}
	tail := text[last+1:]
	r, size := utf8.DecodeRuneInString(tail)
	var exp int
	switch unicode.ToLower(r) {
	case 'k':
		exp = 3
	case 'm':
		exp = 6
	case 'b':
		exp = 9
	case 't':
		exp = 12
	default:
		return text, 0
	}
	rest := tail[size:]
	if next, _ := utf8.DecodeRuneInString(rest); unicode.IsLetter(next) {
		return text, 0
	}
	return text[:last+1] + rest, exp
}

func isDigitRune(r rune) bool {
	return r >= '0' && r <= '9'
}

// normalizeText strips the currency's own symbol from the start of the text,
// then drops every character other than digits, periods, commas,
// apostrophes, and hyphens.
// Stripping the leading symbol first keeps symbols containing punctuation,
// such as "kr." or "S/.", from leaving a phantom delimiter behind.
func normalizeText(text string, curr Currency) string {
	if sym := curr.Symbol(); sym != "" {
		if len(text) >= len(sym) && strings.EqualFold(text[:len(sym)], sym) {
			text = text[len(sym):]
		}
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		switch c := text[i]; {
		case c >= '0' && c <= '9', c == '.', c == ',', c == '\'', c == '-':
			b.WriteByte(c)
		}
	}
	return b.String()
}

// extractSign detects a leading or trailing run of '-' characters.
// A hyphen anywhere else makes the amount invalid.
func extractSign(text string) (string, bool, error) {
	neg := false
	rest := text
	if t := strings.TrimLeft(text, "-"); t != text {
		neg, rest = true, t
	} else if t := strings.TrimRight(text, "-"); t != text {
		neg, rest = true, t
	}
	if strings.Contains(rest, "-") {
		return "", false, fmt.Errorf("misplaced minus sign: %w", ErrInvalidAmount)
	}
	return rest, neg, nil
}

// trimStrayDelimiter drops a trailing delimiter with nothing after it,
// as left behind by inputs like "45 kr." once the letters are gone.
func trimStrayDelimiter(text string) string {
	if n := len(text); n > 0 && (text[n-1] == '.' || text[n-1] == ',') {
		return text[:n-1]
	}
	return text
}

// extractMajorMinor splits cleaned numeric text into integer-part and
// fractional-part digit strings, deciding which punctuation character is
// the decimal mark and which merely groups thousands.
func (p Parser) extractMajorMinor(num string, curr Currency) (string, string, error) {
	delims := distinctDelimiters(num)
	switch len(delims) {
	case 0:
		return num, "0", nil
	case 1:
		return p.splitSingleDelimiter(num, curr, delims[0])
	case 2:
		// Thousands groups always precede the fractional part, so the
		// delimiter appearing first is the thousands separator and the
		// second is the decimal mark.
		num = strings.ReplaceAll(num, delims[0], "")
		major, minor := splitOnce(num, delims[1])
		return major, minor, nil
	default:
		return "", "", fmt.Errorf("too many delimiters: %w", ErrInvalidAmount)
	}
}

// distinctDelimiters returns the distinct non-digit characters of num in
// order of first appearance.
func distinctDelimiters(num string) []string {
	var delims []string
	for i := 0; i < len(num); i++ {
		if c := num[i]; c < '0' || c > '9' {
			if d := string(c); !slices.Contains(delims, d) {
				delims = append(delims, d)
			}
		}
	}
	return delims
}

// splitSingleDelimiter resolves the hard case: a single distinct delimiter
// character d with no second mark to disambiguate it.
func (p Parser) splitSingleDelimiter(num string, curr Currency, d string) (string, string, error) {
	count := strings.Count(num, d)
	switch {
	case p.ExpectWholeSubunits:
		// If the digit run after the last occurrence matches the currency's
		// fractional precision exactly, it is the minor part; any earlier
		// occurrences can only be grouping.
		i := strings.LastIndex(num, d)
		major, minor := num[:i], num[i+len(d):]
		if len(minor) == curr.Scale() {
			return strings.ReplaceAll(major, d, ""), minor, nil
		}
		return p.splitTentative(num, d, count)
	case d == curr.DecimalMark() && count == 1:
		major, minor := splitOnce(num, d)
		return major, minor, nil
	case p.EnforceCurrencyDelimiters && d == curr.ThousandsSep():
		return strings.ReplaceAll(num, d, ""), "0", nil
	default:
		return p.splitTentative(num, d, count)
	}
}

// splitTentative classifies a delimiter that carries no currency-convention
// signal.
// A delimiter occurring more than once can only be grouping, as an amount
// has at most one fractional point.
// A single occurrence is read as a decimal mark unless a three-digit minor
// run, a short nonzero major part, and a non-period delimiter all point at
// thousands grouping: "1,234" looks like 1234, not 1.234.
func (p Parser) splitTentative(num, d string, count int) (string, string, error) {
	if count > 1 {
		return strings.ReplaceAll(num, d, ""), "0", nil
	}
	major, minor, _ := strings.Cut(num, d)
	if len(minor) != 3 || len(major) > 3 || allZeros(major) || (!p.ExpectWholeSubunits && d == ".") {
		if minor == "" {
			minor = "0"
		}
		return major, minor, nil
	}
	return major + minor, "0", nil
}

// splitOnce splits num at the first occurrence of d.
// An absent or empty minor part defaults to "0".
func splitOnce(num, d string) (string, string) {
	major, minor, _ := strings.Cut(num, d)
	if minor == "" {
		minor = "0"
	}
	return major, minor
}

// allZeros reports whether s contains no nonzero digit.
func allZeros(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' {
			return false
		}
	}
	return true
}

// assemble joins the major and minor digit strings with a canonical decimal
// point, applies the multiplier exponent and the sign, and trims or pads
// the result to the scale of the currency.
func assemble(curr Currency, major, minor string, exp int, neg bool) (Amount, error) {
	if major == "" || !isDigits(major) || !isDigits(minor) {
		return Amount{}, fmt.Errorf("number %q: %w", major+"."+minor, ErrInvalidAmount)
	}
	d, err := decimal.ParseExact(major+"."+minor, curr.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("number %q: %w", major+"."+minor, ErrInvalidAmount)
	}
	if exp != 0 {
		d, err = d.MulExact(multipliers[exp], curr.Scale())
		if err != nil {
			return Amount{}, fmt.Errorf("number %q: applying multiplier: %w", major+"."+minor, ErrInvalidAmount)
		}
	}
	d = d.Trim(curr.Scale())
	if neg {
		d = d.Neg()
	}
	a, err := newAmountSafe(curr, d)
	if err != nil {
		return Amount{}, fmt.Errorf("number %q: %w", major+"."+minor, ErrInvalidAmount)
	}
	return a, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
