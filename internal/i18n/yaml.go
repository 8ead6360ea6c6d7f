package i18n

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v2"
)

const translationsDir = "embedded/translations"

// Direction tells whether a relative phrase points to the future or the past.
type Direction string

const (
	Future Direction = "future"
	Past   Direction = "past"
)

type pluralForms struct {
	Zero  string `yaml:"zero"`
	One   string `yaml:"one"`
	Two   string `yaml:"two"`
	Few   string `yaml:"few"`
	Many  string `yaml:"many"`
	Other string `yaml:"other"`
}

type unitPhrases struct {
	Future pluralForms    `yaml:"future"`
	Past   pluralForms    `yaml:"past"`
	Auto   map[int]string `yaml:"auto"`
}

// Key identifies the plural-aware numeric phrase for unit in direction d.
func Key(unit string, d Direction) string {
	return fmt.Sprintf("relative.%s.%s", unit, d)
}

// AutoKey identifies the phrase used instead of a number, such as "tomorrow"
// for one day in the future.
func AutoKey(unit string, n int) string {
	return fmt.Sprintf("relative.%s.auto.%d", unit, n)
}

// NewCatalogFromFolder reads all translation yml files from dir and generates a
// relative time catalog from them. Each yml file must be named after the
// language tag it translates, e. g. "es.yml" for spanish.
func NewCatalogFromFolder(dir fs.FS, fallbackLang string) (*catalog.Builder, error) {
	fallback, err := language.Parse(fallbackLang)
	if err != nil {
		return nil, err
	}
	files, err := fs.ReadDir(dir, translationsDir)
	if err != nil {
		return nil, err
	}
	cat := catalog.NewBuilder(catalog.Fallback(fallback))
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		tag, err := language.Parse(strings.TrimSuffix(file.Name(), filepath.Ext(file.Name())))
		if err != nil {
			return nil, fmt.Errorf("translation file %s: %w", file.Name(), err)
		}
		yamlFile, err := fs.ReadFile(dir, translationsDir+"/"+file.Name())
		if err != nil {
			return nil, err
		}
		phrases, err := ParseYAMLPhrases(yamlFile)
		if err != nil {
			return nil, fmt.Errorf("translation file %s: %w", file.Name(), err)
		}
		if err = addPhrases(cat, tag, phrases); err != nil {
			return nil, err
		}
	}
	return cat, nil
}

func ParseYAMLPhrases(file []byte) (map[string]unitPhrases, error) {
	data := map[string]unitPhrases{}
	if err := yaml.Unmarshal(file, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func addPhrases(cat *catalog.Builder, tag language.Tag, phrases map[string]unitPhrases) error {
	for unit, p := range phrases {
		if err := cat.Set(tag, Key(unit, Future), selectPlural(p.Future)); err != nil {
			return err
		}
		if err := cat.Set(tag, Key(unit, Past), selectPlural(p.Past)); err != nil {
			return err
		}
		for n, text := range p.Auto {
			if err := cat.SetString(tag, AutoKey(unit, n), text); err != nil {
				return err
			}
		}
	}
	return nil
}

func selectPlural(forms pluralForms) catalog.Message {
	var cases []interface{}
	add := func(form plural.Form, text string) {
		if text != "" {
			cases = append(cases, form, text)
		}
	}
	add(plural.Zero, forms.Zero)
	add(plural.One, forms.One)
	add(plural.Two, forms.Two)
	add(plural.Few, forms.Few)
	add(plural.Many, forms.Many)
	cases = append(cases, plural.Other, forms.Other)
	return plural.Selectf(1, "", cases...)
}
