// internal/i18n/i18n.go
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

type I18n struct {
	mu           sync.RWMutex
	translations map[string]map[string]string
	defaultLang  string
}

var instance *I18n
var once sync.Once

// Initialize loads the locale files from localesPath, falling back to the
// copies compiled into the binary when the directory does not exist.
func Initialize(localesPath, defaultLang string) error {
	var err error
	once.Do(func() {
		instance, err = New(localesPath, defaultLang)
	})
	return err
}

func New(localesPath, defaultLang string) (*I18n, error) {
	if defaultLang == "" {
		defaultLang = "en"
	}
	i := &I18n{
		translations: make(map[string]map[string]string),
		defaultLang:  defaultLang,
	}

	var fsys fs.FS
	if info, err := os.Stat(localesPath); localesPath != "" && err == nil && info.IsDir() {
		fsys = os.DirFS(localesPath)
	} else {
		sub, err := fs.Sub(embeddedLocales, "locales")
		if err != nil {
			return nil, err
		}
		fsys = sub
	}

	if err := i.LoadTranslations(fsys); err != nil {
		return nil, err
	}
	return i, nil
}

func (i *I18n) LoadTranslations(fsys fs.FS) error {
	localeFiles, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return fmt.Errorf("failed to list locale files: %w", err)
	}

	for _, file := range localeFiles {
		lang := strings.TrimSuffix(filepath.Base(file), ".json")

		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return fmt.Errorf("failed to read locale file %s: %w", file, err)
		}

		var translations map[string]string
		if err := json.Unmarshal(data, &translations); err != nil {
			return fmt.Errorf("failed to unmarshal locale file %s: %w", file, err)
		}

		i.mu.Lock()
		i.translations[lang] = translations
		i.mu.Unlock()
	}

	return nil
}

func (i *I18n) T(lang, key string, args ...interface{}) string {
	i.mu.RLock()
	defer i.mu.RUnlock()

	// Try to get translation for requested language
	if translations, exists := i.translations[lang]; exists {
		if text, exists := translations[key]; exists {
			if len(args) > 0 {
				return fmt.Sprintf(text, args...)
			}
			return text
		}
	}

	// Fallback to default language
	if lang != i.defaultLang {
		if translations, exists := i.translations[i.defaultLang]; exists {
			if text, exists := translations[key]; exists {
				if len(args) > 0 {
					return fmt.Sprintf(text, args...)
				}
				return text
			}
		}
	}

	// Return key if no translation found
	return key
}

// Global functions
func T(lang, key string, args ...interface{}) string {
	if instance != nil {
		return instance.T(lang, key, args...)
	}
	return key
}

func GetSupportedLanguages() []string {
	if instance == nil {
		return []string{"en"}
	}

	instance.mu.RLock()
	defer instance.mu.RUnlock()

	langs := make([]string, 0, len(instance.translations))
	for lang := range instance.translations {
		langs = append(langs, lang)
	}
	return langs
}
