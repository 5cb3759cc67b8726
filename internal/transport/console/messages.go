package console

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys double as the English text.
const (
	msgPrompt      = "%s, make your move!"
	msgOutOfRange  = "Please enter a column number from 1 to %d."
	msgColumnFull  = "Column %d is full, pick another."
	msgWins        = "%s WINS"
	msgDraw        = "DRAW"
	msgPlayAgain   = "Play again? (y/n)"
	msgGoodbye     = "Thanks for playing!"
	msgAnswerYesNo = "Please answer y or n."
)

var translations = map[language.Tag]map[string]string{
	language.Spanish: {
		msgPrompt:      "%s, ¡haz tu jugada!",
		msgOutOfRange:  "Introduce un número de columna del 1 al %d.",
		msgColumnFull:  "La columna %d está llena, elige otra.",
		msgWins:        "%s GANA",
		msgDraw:        "EMPATE",
		msgPlayAgain:   "¿Jugar otra vez? (s/n)",
		msgGoodbye:     "¡Gracias por jugar!",
		msgAnswerYesNo: "Responde s o n.",
	},
}

var messages = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, key := range []string{msgPrompt, msgOutOfRange, msgColumnFull, msgWins, msgDraw, msgPlayAgain, msgGoodbye, msgAnswerYesNo} {
		if err := b.SetString(language.English, key, key); err != nil {
			panic(err)
		}
	}
	for tag, entries := range translations {
		for key, msg := range entries {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// NewPrinter returns a printer for locale, falling back to English when the
// locale cannot be parsed or has no translations.
func NewPrinter(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	matched, _, _ := language.NewMatcher(messages.Languages()).Match(tag)
	base, _ := matched.Base()
	return message.NewPrinter(language.Make(base.String()), message.Catalog(messages))
}
