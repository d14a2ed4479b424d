// Package translate localizes the user-facing text of the arithmetic unit.
package translate

import (
	"io"
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// DEFAULT_LOCALE is used when the host reports no locale.
const DEFAULT_LOCALE = "en-US"

var printer = newPrinter()

func newPrinter() *message.Printer {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("arith: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{DEFAULT_LOCALE}
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Fprintf translates an en-US Printf() format and writes it to w.
func Fprintf(w io.Writer, key message.Reference, args ...any) (n int, err error) {
	return printer.Fprintf(w, key, args...)
}
