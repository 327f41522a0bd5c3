package ui

import (
	"os"
	"path/filepath"

	"github.com/leonelquinteros/gotext"
)

const localeDomain = "default"

// ConfigureLocale loads translations for lang from dir. Missing catalogs are
// not an error: gotext then returns message ids unchanged.
func ConfigureLocale(dir, lang string) bool {
	if dir == "" || lang == "" {
		return false
	}
	gotext.Configure(dir, lang, localeDomain)
	for _, p := range []string{
		filepath.Join(dir, lang, "LC_MESSAGES", localeDomain+".po"),
		filepath.Join(dir, lang, localeDomain+".po"),
	} {
		if _, err := os.Stat(p); err == nil {
			return true
		}
	}
	return false
}
