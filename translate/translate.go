// Package translate localises user-facing messages.
//
// Messages are written as en-US fmt formats and looked up in the message
// catalog for the user's locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	tag     language.Tag
	printer *message.Printer
)

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("radix: locale: %v", err)
	}

	SetLocales(locales...)
}

// SetLocales selects the best matching language for messages. An empty
// list selects en-US.
func SetLocales(locales ...string) {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	tag = message.MatchLanguage(locales...)
	printer = message.NewPrinter(tag)
}

// Language returns the language messages are currently rendered in.
func Language() language.Tag {
	return tag
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
