// Package translate localizes diagnostic text for the user's locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var (
	mutex   sync.Mutex
	printer *message.Printer
)

// current returns the printer, selecting the system locales on first use.
func current() *message.Printer {
	mutex.Lock()
	defer mutex.Unlock()

	if printer == nil {
		locales, err := locale.GetLocales()
		if err != nil {
			log.Printf("mixvm: locale: %v", err)
		}
		printer = newPrinter(locales...)
	}

	return printer
}

func newPrinter(locales ...string) *message.Printer {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
}

// Use overrides the system locales. With no locales, en-US is used.
func Use(locales ...string) {
	mutex.Lock()
	defer mutex.Unlock()

	printer = newPrinter(locales...)
}

// From formats an en-US Sprintf() style key for the current locale.
func From(key message.Reference, args ...any) string {
	return current().Sprintf(key, args...)
}

// Error is an error whose message is translated each time it is reported.
type Error struct {
	key string
}

// NewError returns a sentinel error for an en-US message key.
func NewError(key string) error {
	return &Error{key: key}
}

func (err *Error) Error() string {
	return From(err.key)
}
