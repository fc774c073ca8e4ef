package utils

import (
	"strings"
	"time"
	"unicode"
)

// CapitalizeFirst upper-cases the first letter of s, leaving the rest as typed.
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// DigitsOnly strips every non-digit rune from s and truncates the result to
// max digits. Used to normalize phone numbers as they are typed.
func DigitsOnly(s string, max int) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if max > 0 && b.Len() == max {
				break
			}
		}
	}
	return b.String()
}

// IsAlphabetic reports whether s consists only of letters and spaces.
func IsAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && r != ' ' {
			return false
		}
	}
	return true
}

// CurrentDate returns today's date as yyyy-mm-dd.
func CurrentDate() string {
	return time.Now().Format("2006-01-02")
}

// FormatDisplayDate converts a yyyy-mm-dd date to dd/mm/yyyy for printing.
// Invalid input is returned unchanged.
func FormatDisplayDate(s string) string {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format("02/01/2006")
}
