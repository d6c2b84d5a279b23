package monetize

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestCurrency_Parse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			code string
			want Currency
		}{
			{"999", XXX},
			{"xxx", XXX},
			{"XXX", XXX},
			{"392", JPY},
			{"jpy", JPY},
			{"JPY", JPY},
			{"840", USD},
			{"usd", USD},
			{"USD", USD},
			{"512", OMR},
			{"omr", OMR},
			{"OMR", OMR},
		}
		for _, tt := range tests {
			got, err := ParseCurr(tt.code)
			if err != nil {
				t.Errorf("ParseCurr(%q) failed: %v", tt.code, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseCurr(%q) = %v, want %v", tt.code, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"", "000", "test", "xbt", "$", "AU$", "BTC",
		}
		for _, tt := range tests {
			_, err := ParseCurr(tt)
			if err == nil {
				t.Errorf("ParseCurr(%q) did not fail", tt)
			}
			if !errors.Is(err, ErrUnknownCurrency) {
				t.Errorf("ParseCurr(%q) = %v, want ErrUnknownCurrency", tt, err)
			}
		}
	})
}

func TestMustParseCurr(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseCurr(\"UUU\") did not panic")
			}
		}()
		MustParseCurr("UUU")
	})
}

func TestWrapCurr(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			code string
			def  Currency
			want Currency
		}{
			{"", USD, USD},
			{"", JPY, JPY},
			{"EUR", USD, EUR},
			{"eur", XXX, EUR},
			{"978", XXX, EUR},
		}
		for _, tt := range tests {
			got, err := WrapCurr(tt.code, tt.def)
			if err != nil {
				t.Errorf("WrapCurr(%q, %v) failed: %v", tt.code, tt.def, err)
				continue
			}
			if got != tt.want {
				t.Errorf("WrapCurr(%q, %v) = %v, want %v", tt.code, tt.def, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []struct {
			code string
			def  Currency
		}{
			{"", XXX},
			{"UUU", USD},
			{"$", USD},
		}
		for _, tt := range tests {
			_, err := WrapCurr(tt.code, tt.def)
			if err == nil {
				t.Errorf("WrapCurr(%q, %v) did not fail", tt.code, tt.def)
				continue
			}
			if !errors.Is(err, ErrUnknownCurrency) {
				t.Errorf("WrapCurr(%q, %v) = %v, want ErrUnknownCurrency", tt.code, tt.def, err)
			}
		}
	})
}

func TestCurrency_Scale(t *testing.T) {
	tests := []struct {
		curr Currency
		want int
	}{
		{XXX, 0},
		{JPY, 0},
		{KRW, 0},
		{CLP, 0},
		{VND, 0},
		{EUR, 2},
		{USD, 2},
		{BHD, 3},
		{OMR, 3},
		{KWD, 3},
	}
	for _, tt := range tests {
		got := tt.curr.Scale()
		if got != tt.want {
			t.Errorf("%v.Scale() = %v, want %v", tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_Num(t *testing.T) {
	tests := []struct {
		curr Currency
		want string
	}{
		{XXX, "999"},
		{JPY, "392"},
		{USD, "840"},
		{OMR, "512"},
	}
	for _, tt := range tests {
		got := tt.curr.Num()
		if got != tt.want {
			t.Errorf("%v.Num() = %v, want %v", tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_Code(t *testing.T) {
	tests := []struct {
		curr Currency
		want string
	}{
		{XXX, "XXX"},
		{JPY, "JPY"},
		{USD, "USD"},
		{OMR, "OMR"},
	}
	for _, tt := range tests {
		got := tt.curr.Code()
		if got != tt.want {
			t.Errorf("%v.Code() = %v, want %v", tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_Symbol(t *testing.T) {
	tests := []struct {
		curr Currency
		want string
	}{
		{XXX, ""},
		{USD, "$"},
		{EUR, "€"},
		{GBP, "£"},
		{HKD, "HK$"},
		{MYR, "RM"},
		{PEN, "S/."},
	}
	for _, tt := range tests {
		got := tt.curr.Symbol()
		if got != tt.want {
			t.Errorf("%v.Symbol() = %q, want %q", tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_Delimiters(t *testing.T) {
	tests := []struct {
		curr      Currency
		mark, sep string
	}{
		{USD, ".", ","},
		{EUR, ",", "."},
		{CHF, ".", "'"},
		{BRL, ",", "."},
		{JPY, ".", ","},
	}
	for _, tt := range tests {
		if got := tt.curr.DecimalMark(); got != tt.mark {
			t.Errorf("%v.DecimalMark() = %q, want %q", tt.curr, got, tt.mark)
		}
		if got := tt.curr.ThousandsSep(); got != tt.sep {
			t.Errorf("%v.ThousandsSep() = %q, want %q", tt.curr, got, tt.sep)
		}
	}
}

// The delimiter heuristics assume every registered currency can tell its two
// delimiters apart.
func TestCurrency_DelimitersDistinct(t *testing.T) {
	for i := range codeLookup {
		c := Currency(i)
		if c.DecimalMark() == c.ThousandsSep() {
			t.Errorf("%v: decimal mark %q equals thousands separator", c, c.DecimalMark())
		}
	}
}

func TestCurrency_SubunitToUnit(t *testing.T) {
	tests := []struct {
		curr Currency
		want int
	}{
		{JPY, 1},
		{USD, 100},
		{EUR, 100},
		{BHD, 1000},
	}
	for _, tt := range tests {
		got := tt.curr.SubunitToUnit()
		if got != tt.want {
			t.Errorf("%v.SubunitToUnit() = %v, want %v", tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_Format(t *testing.T) {
	tests := []struct {
		curr         Currency
		format, want string
	}{
		// %T verb
		{USD, "%T", "monetize.Currency"},
		// %q verb
		{USD, "%q", "\"USD\""},
		{USD, "%6q", " \"USD\""},
		{USD, "%7q", "  \"USD\""},
		{USD, "%-7q", "\"USD\"  "},
		// %s verb
		{JPY, "%s", "JPY"},
		{JPY, "%4s", " JPY"},
		{JPY, "%-5s", "JPY  "},
		// %v verb
		{OMR, "%v", "OMR"},
		{OMR, "%5v", "  OMR"},
		// %c verb
		{XXX, "%c", "XXX"},
		{USD, "%c", "USD"},
		{USD, "%5c", "  USD"},
		{USD, "%-5c", "USD  "},
		// wrong verbs
		{USD, "%b", "%!b(monetize.Currency=USD)"},
	}
	for _, tt := range tests {
		got := fmt.Sprintf(tt.format, tt.curr)
		if got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_Scan(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := XXX
		if err := c.Scan("USD"); err != nil {
			t.Errorf("c.Scan(\"USD\") failed: %v", err)
		}
		if c != USD {
			t.Errorf("c.Scan(\"USD\") = %v, want USD", c)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []any{nil, 840, 84.0, []byte("UUU")}
		for _, tt := range tests {
			c := XXX
			if err := c.Scan(tt); err == nil {
				t.Errorf("c.Scan(%v) did not fail", tt)
			}
		}
	})
}

func TestCurrency_MarshalJSON(t *testing.T) {
	got, err := json.Marshal(EUR)
	if err != nil {
		t.Fatalf("json.Marshal(EUR) failed: %v", err)
	}
	if string(got) != "\"EUR\"" {
		t.Errorf("json.Marshal(EUR) = %q, want \"\\\"EUR\\\"\"", got)
	}
}

func TestCurrency_UnmarshalJSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var c Currency
		if err := json.Unmarshal([]byte("\"EUR\""), &c); err != nil {
			t.Fatalf("json.Unmarshal(\"EUR\") failed: %v", err)
		}
		if c != EUR {
			t.Errorf("json.Unmarshal(\"EUR\") = %v, want EUR", c)
		}
	})

	t.Run("error", func(t *testing.T) {
		var c Currency
		if err := json.Unmarshal([]byte("\"UUU\""), &c); err == nil {
			t.Errorf("json.Unmarshal(\"UUU\") did not fail")
		}
	})
}

func TestCurrency_MarshalText(t *testing.T) {
	got, err := USD.MarshalText()
	if err != nil {
		t.Fatalf("USD.MarshalText() failed: %v", err)
	}
	if string(got) != "USD" {
		t.Errorf("USD.MarshalText() = %q, want \"USD\"", got)
	}
}

func TestCurrency_UnmarshalText(t *testing.T) {
	var c Currency
	if err := c.UnmarshalText([]byte("JPY")); err != nil {
		t.Fatalf("c.UnmarshalText(\"JPY\") failed: %v", err)
	}
	if c != JPY {
		t.Errorf("c.UnmarshalText(\"JPY\") = %v, want JPY", c)
	}
}

func TestCurrency_Value(t *testing.T) {
	got, err := GBP.Value()
	if err != nil {
		t.Fatalf("GBP.Value() failed: %v", err)
	}
	if got != "GBP" {
		t.Errorf("GBP.Value() = %v, want \"GBP\"", got)
	}
}

func TestNullCurrency_Scan(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		got := NullCurrency{Currency: USD, Valid: true}
		if err := got.Scan(nil); err != nil {
			t.Errorf("Scan(nil) failed: %v", err)
		}
		if got.Valid {
			t.Errorf("Scan(nil) did not invalidate the currency")
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"UUU"}
		for _, tt := range tests {
			got := NullCurrency{}
			err := got.Scan([]byte(tt))
			if err == nil {
				t.Errorf("Scan(%q) did not fail", tt)
			}
		}
	})
}
