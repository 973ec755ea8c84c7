// Package glyph maps schedule categories and event titles to the
// symbols used across the terminal views.
package glyph

import (
	"strings"

	"tableflip.dev/crono/pkg/schedule"
)

type Glyph struct {
	Symbol  string
	Meaning string
}

func (g Glyph) String() string { return g.Symbol }

var categoryGlyphs = map[schedule.Category]Glyph{
	schedule.Routine:    {Symbol: "◷", Meaning: "rotina"},
	schedule.Meals:      {Symbol: "🍽", Meaning: "refeição"},
	schedule.Activities: {Symbol: "◉", Meaning: "atividade"},
	schedule.Messages:   {Symbol: "✦", Meaning: "mensagem"},
	schedule.Transport:  {Symbol: "⇄", Meaning: "transporte"},
}

// ForCategory returns the category's glyph.
func ForCategory(c schedule.Category) Glyph {
	return categoryGlyphs[c]
}

// titleGlyphs is the keyword fallback carried over from the original
// card renderer: when a title says more than its category, prefer the
// specific symbol. First match wins.
var titleGlyphs = []struct {
	keyword string
	glyph   Glyph
}{
	{"ônibus", Glyph{Symbol: "⇄", Meaning: "transporte"}},
	{"abertura", Glyph{Symbol: "✶", Meaning: "abertura"}},
	{"café", Glyph{Symbol: "🍽", Meaning: "refeição"}},
	{"almoço", Glyph{Symbol: "🍽", Meaning: "refeição"}},
	{"jantar", Glyph{Symbol: "🍽", Meaning: "refeição"}},
	{"lanche", Glyph{Symbol: "🍽", Meaning: "refeição"}},
	{"banho", Glyph{Symbol: "☂", Meaning: "banho"}},
	{"mensagem", Glyph{Symbol: "✦", Meaning: "mensagem"}},
	{"leitura", Glyph{Symbol: "✦", Meaning: "leitura"}},
	{"bíblica", Glyph{Symbol: "✦", Meaning: "leitura"}},
	{"despertar", Glyph{Symbol: "◷", Meaning: "rotina"}},
	{"oração", Glyph{Symbol: "◷", Meaning: "rotina"}},
	{"monitores", Glyph{Symbol: "◷", Meaning: "rotina"}},
	{"gincana", Glyph{Symbol: "◉", Meaning: "atividade"}},
	{"atividade", Glyph{Symbol: "◉", Meaning: "atividade"}},
	{"batismo", Glyph{Symbol: "≈", Meaning: "batismo"}},
}

// ForEvent picks a glyph for an event: transport always wins, then the
// title keywords, then the category default.
func ForEvent(c schedule.Category, title string) Glyph {
	if c == schedule.Transport {
		return categoryGlyphs[schedule.Transport]
	}
	lower := strings.ToLower(title)
	for _, tg := range titleGlyphs {
		if strings.Contains(lower, tg.keyword) {
			return tg.glyph
		}
	}
	return categoryGlyphs[c]
}
