package presentation

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// dateStyle holds the numeric date and short time layouts for a locale
type dateStyle struct {
	date string
	time string
}

// The first tag is the fallback for unknown locales.
var supportedLocales = []language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
	language.German,
	language.Ukrainian,
}

var dateStyles = map[language.Tag]dateStyle{
	language.AmericanEnglish: {date: "1/2/2006", time: "3:04 PM"},
	language.BritishEnglish:  {date: "02/01/2006", time: "15:04"},
	language.German:          {date: "2.1.2006", time: "15:04"},
	language.Ukrainian:       {date: "02.01.2006", time: "15:04"},
}

var localeMatcher = language.NewMatcher(supportedLocales)

// resolveLocale parses a BCP 47 identifier, falling back to American English
func resolveLocale(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

// styleFor picks the closest supported date style for a locale
func styleFor(locale string) dateStyle {
	_, index, _ := localeMatcher.Match(resolveLocale(locale))
	return dateStyles[supportedLocales[index]]
}

// FormatDate renders t as a numeric calendar date in the locale's order
func FormatDate(t time.Time, locale string) string {
	return t.Format(styleFor(locale).date)
}

// FormatTime renders the hour and minute of t for the locale
func FormatTime(t time.Time, locale string) string {
	return t.Format(styleFor(locale).time)
}

// FormatDateTime renders the date followed by the time, as shown in the header
func FormatDateTime(t time.Time, locale string) string {
	return FormatDate(t, locale) + " " + FormatTime(t, locale)
}

func printerFor(locale string) *message.Printer {
	return message.NewPrinter(resolveLocale(locale))
}

// numberSymbols are the digit group and decimal separators of a locale
type numberSymbols struct {
	group   string
	decimal string
}

var defaultSymbols = numberSymbols{group: ",", decimal: "."}

// symbolsFor reads the separators from x/text's rendering of 1000.5
func symbolsFor(locale string) numberSymbols {
	sample := printerFor(locale).Sprintf("%.1f", 1000.5)
	one := strings.Index(sample, "1")
	zeros := strings.Index(sample, "000")
	five := strings.LastIndex(sample, "5")
	if one < 0 || zeros <= one || five < zeros+3 {
		return defaultSymbols
	}
	return numberSymbols{
		group:   sample[one+1 : zeros],
		decimal: sample[zeros+3 : five],
	}
}

// formatAmount renders amount with two decimals using the locale's
// separators. Digits come from the decimal itself, never from a float.
func formatAmount(amount decimal.Decimal, locale string) string {
	symbols := symbolsFor(locale)

	fixed := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteString(symbols.group)
		}
		b.WriteRune(digit)
	}
	b.WriteString(symbols.decimal)
	b.WriteString(frac)
	return b.String()
}
