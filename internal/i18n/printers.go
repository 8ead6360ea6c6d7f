package i18n

import (
	"embed"
	"io/fs"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed embedded
var Embedded embed.FS

// Printers hands out message printers for the languages a relative time
// catalog has translations for.
type Printers struct {
	cat      catalog.Catalog
	tags     []language.Tag
	matcher  language.Matcher
	fallback int
}

func NewPrinters(dir fs.FS, fallbackLang string) (*Printers, error) {
	cat, err := NewCatalogFromFolder(dir, fallbackLang)
	if err != nil {
		return nil, err
	}
	fallback := language.MustParse(fallbackLang)
	tags := cat.Languages()
	p := &Printers{
		cat:     cat,
		tags:    tags,
		matcher: language.NewMatcher(tags),
	}
	for i, tag := range tags {
		if tag == fallback {
			p.fallback = i
		}
	}
	return p, nil
}

// For returns a printer for the translation closest to tag, or for the
// fallback language when none matches.
func (p *Printers) For(tag language.Tag) *message.Printer {
	_, i, confidence := p.matcher.Match(tag)
	if confidence == language.No {
		i = p.fallback
	}
	return message.NewPrinter(p.tags[i], message.Catalog(p.cat))
}

func (p *Printers) Languages() []language.Tag {
	return append([]language.Tag(nil), p.tags...)
}
