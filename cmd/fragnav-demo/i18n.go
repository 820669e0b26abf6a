package main

import (
	"embed"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

type translator struct {
	localizer *i18n.Localizer
	tag       language.Tag
}

func newTranslator(langs ...string) (*translator, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(localeFS, "locales/*.toml")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(localeFS, f); err != nil {
			return nil, err
		}
	}

	matcher := language.NewMatcher(bundle.LanguageTags())
	tag, _ := language.MatchStrings(matcher, langs...)

	return &translator{
		localizer: i18n.NewLocalizer(bundle, langs...),
		tag:       tag,
	}, nil
}

// T localizes id, returning id itself when there is no such message.
func (t *translator) T(id string, data map[string]any) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}

func (t *translator) tabLabel(name string) string {
	id := "tab_" + name
	if label := t.T(id, nil); label != id {
		return label
	}
	return name
}

// userLanguages reads the POSIX locale variables, most specific first.
func userLanguages() []string {
	var out []string
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		raw := os.Getenv(env)
		if raw == "" || raw == "C" || raw == "POSIX" {
			continue
		}
		raw, _, _ = strings.Cut(raw, ".")
		raw = strings.ReplaceAll(raw, "_", "-")
		if tag, err := language.Parse(raw); err == nil {
			out = append(out, tag.String())
		}
	}
	return out
}
