// Package locale formats dates in Brazilian Portuguese.
//
// Only the long pattern used by the schedule listing is supported, so the
// weekday and month names are kept in small tables instead of a full CLDR
// dataset.
package locale

import (
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"
)

var weekdays = [...]string{
	time.Sunday:    "domingo",
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
}

var months = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Weekday returns the lowercase pt-BR name of d
func Weekday(d time.Weekday) string {
	return weekdays[d]
}

// Month returns the lowercase pt-BR name of m
func Month(m time.Month) string {
	return months[m-1]
}

// FormatLong renders t as "EEEE, dd 'de' MMMM 'de' yyyy 'às' HH:mm" with the
// first letter capitalized, e.g. "Segunda-feira, 12 de maio de 2025 às 19:30".
// t is rendered in its own location; convert with In before calling.
func FormatLong(t time.Time) string {
	s := fmt.Sprintf("%s, %02d de %s de %04d às %02d:%02d",
		Weekday(t.Weekday()), t.Day(), Month(t.Month()), t.Year(), t.Hour(), t.Minute())
	return Capitalize(s)
}

// Capitalize upper-cases the first rune of s
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
