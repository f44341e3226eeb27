// Package translate formats user visible messages for the current locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

//go:generate go tool gotext -srclang=en-US update -out=catalog.go -lang=en-US github.com/PickledChair/BrainFucker/compiler github.com/PickledChair/BrainFucker/engine github.com/PickledChair/BrainFucker/emulator github.com/PickledChair/BrainFucker/io

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("brainfucker: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
