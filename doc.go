/*
Package monetize converts free-form, human-authored monetary strings into
exact monetary amounts.
It accepts the inconsistent formats found in scraped or hand-typed prices,
such as "$1,234.56", "€1.234,56", "1.5M", or "-£20", and normalizes them
into an [Amount]: a signed decimal value paired with a resolved [Currency].
It builds on the [decimal] package for exact decimal arithmetic.

# Parsing Pipeline

Each call to [Parse] runs a fixed sequence of steps:

  - currency resolution, from an embedded 2-3 letter uppercase code,
    a known currency symbol, or a fallback currency;
  - multiplier extraction, recognizing a trailing K, M, B, or T suffix
    as thousands, millions, billions, or trillions;
  - text normalization, stripping currency symbols and any characters
    other than digits, periods, commas, apostrophes, and hyphens;
  - sign extraction, from a leading or trailing run of hyphens;
  - delimiter disambiguation, deciding which punctuation mark separates
    the fractional part and which merely groups thousands.

Delimiter disambiguation is driven by the resolved currency's conventions.
When an input like "1,000" gives no unambiguous signal, a three-digit run
after a single delimiter is read as thousands grouping unless the delimiter
matches the currency's decimal mark or other evidence says otherwise.
The [Parser] type exposes the knobs that tighten or relax these heuristics.

# Representation

The package consists of two main types: Amount and Currency.
An Amount represents a monetary value and consists of a Currency and
a decimal.Decimal value.
The Currency type is implemented as an integer index into in-memory arrays
containing the code, symbol, decimal mark, thousands separator, and
subunit-to-unit ratio of each registered currency.
Both types are immutable and safe for concurrent use by multiple goroutines.

# Errors

Parsing either fully succeeds or fails; no partial results are returned.
Failures are reported as errors wrapping [ErrInvalidAmount] (malformed
numeric text) or [ErrUnknownCurrency] (unregistered currency code), and can
be tested with [errors.Is].

[decimal]: https://pkg.go.dev/github.com/govalues/decimal
*/
package monetize
