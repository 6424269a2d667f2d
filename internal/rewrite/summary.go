package rewrite

import (
	"github.com/evo-tools/fieldstrip/internal/strip"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Summary totals a directory rewrite.
type Summary struct {
	Files int `json:"files"`
	strip.Stats
}

func (s Summary) String() string {
	return printer.Sprintf("%d files, %d lines, %d lines changed, %d fragments stripped",
		s.Files, s.Lines, s.Changed, s.Fragments)
}
