// Package money converts between decimal EUR amounts and integer cents, and
// derives the calendar day keys used to partition the ledger. Amounts are
// stored as cents everywhere; decimals exist only at the input/display
// boundary.
package money

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var dayKeyRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var hundred = decimal.NewFromInt(100)

var symbolReplacer = strings.NewReplacer("€", "", "$", "", "£", "", ",", "", " ", "", "\t", "")

// CentsFromFloat converts a decimal amount to cents, rounding to the nearest
// cent. Non-finite input yields 0; this is a lossy UI-facing convenience and
// must not be applied to ledger values, which are already integral.
func CentsFromFloat(v float64) int64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Mul(hundred).Round(0).IntPart()
}

// CentsFromString parses a decimal amount from user input, tolerating
// currency symbols, separators and whitespace. Unparseable input yields 0.
func CentsFromString(s string) int64 {
	cleaned := strings.TrimSpace(symbolReplacer.Replace(s))
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}
	return d.Mul(hundred).Round(0).IntPart()
}

// Format renders cents as a German-style EUR string, e.g. 123456 -> "1.234,56 €".
func Format(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	euros := cents / 100
	rest := cents % 100
	return sign + groupThousands(euros) + "," + pad2(rest) + " €"
}

func groupThousands(v int64) string {
	s := strconv.FormatInt(v, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func pad2(v int64) string {
	if v < 10 {
		return "0" + strconv.FormatInt(v, 10)
	}
	return strconv.FormatInt(v, 10)
}

// DayKey returns the local calendar date of t as YYYY-MM-DD. The zero time
// falls back to now. Receipt stamping and ledger queries both go through
// this function so they can never disagree about day boundaries.
func DayKey(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.Local().Format("2006-01-02")
}

// DayKeyNow returns today's day key.
func DayKeyNow() string {
	return DayKey(time.Now())
}

// ValidDayKey reports whether s is a well-formed day key.
func ValidDayKey(s string) bool {
	return dayKeyRe.MatchString(s)
}
