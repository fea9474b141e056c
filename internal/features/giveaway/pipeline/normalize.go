package pipeline

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"

	"free-game-tracker/internal/features/giveaway/models"
)

// endDateLayouts are tried in order. Layouts without a zone parse as UTC.
var endDateLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Normalize projects raw records onto NormalizedGiveaway, preserving order.
// It never fails: malformed worth becomes 0, malformed dates never expire.
func Normalize(records []models.Giveaway) []models.NormalizedGiveaway {
	return lo.Map(records, func(g models.Giveaway, _ int) models.NormalizedGiveaway {
		return NormalizeOne(g)
	})
}

// NormalizeOne normalizes a single record.
func NormalizeOne(g models.Giveaway) models.NormalizedGiveaway {
	return models.NormalizedGiveaway{
		Giveaway:   g,
		WorthValue: ParseWorth(g.Worth),
		Expiry:     ParseExpiry(g.EndDate),
	}
}

// ParseWorth turns "$12.99"-style text into a non-negative number. The
// sentinel, text without a numeric prefix and negative values all yield 0.
func ParseWorth(raw string) float64 {
	if raw == models.NotApplicable {
		return 0
	}

	s := strings.TrimSpace(raw)
	if r, size := utf8.DecodeRuneInString(s); size > 0 && unicode.Is(unicode.Sc, r) {
		s = s[size:]
	}

	v, ok := leadingDecimal(s)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// ParseExpiry turns an end date into an Expiry. Unparseable input is
// treated like the sentinel.
func ParseExpiry(raw string) models.Expiry {
	if raw == models.NotApplicable {
		return models.Never
	}

	s := strings.TrimSpace(raw)
	for _, layout := range endDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return models.ExpiryAt(t)
		}
	}
	return models.Never
}

// leadingDecimal parses the longest decimal prefix of s, ignoring whatever
// follows it: "12.99 USD" is 12.99 and "1,000" is 1.
func leadingDecimal(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0, false
	}

	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			end = k
		}
	}

	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
