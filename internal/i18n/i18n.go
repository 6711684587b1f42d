// Package i18n loads the embedded message catalogs and localizes badge metadata.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/renato0307/pomo/internal/domain"
)

// BaseLocale is the locale every other catalog falls back to
const BaseLocale = "en"

type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// Bundle holds the messages of every loaded locale
type Bundle struct {
	locales map[string]map[string]string
}

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

var (
	defaultBundle = mustLoadEmbedded()
	matcher       = language.NewMatcher(SupportedTags())
)

func mustLoadEmbedded() *Bundle {
	bundle, err := LoadFromFS(embeddedFS)
	if err != nil {
		panic(fmt.Sprintf("load embedded catalogs: %v", err))
	}
	bundle.Register()
	return bundle
}

// Default returns the process-wide embedded bundle
func Default() *Bundle {
	return defaultBundle
}

// LoadFromFS reads every locales/<locale>/<namespace>.yaml file of catalogFS
func LoadFromFS(catalogFS fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(catalogFS, "locales/*/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	bundle := &Bundle{locales: map[string]map[string]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(catalogFS, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := bundle.addFile(p, file); err != nil {
			return nil, err
		}
	}

	if _, ok := bundle.locales[BaseLocale]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	return bundle, nil
}

func (b *Bundle) addFile(p string, file catalogFile) error {
	localeFromPath := path.Base(path.Dir(p))
	namespaceFromPath := strings.TrimSuffix(path.Base(p), path.Ext(p))

	locale := strings.TrimSpace(file.Locale)
	if locale != localeFromPath {
		return fmt.Errorf("catalog %s: locale %q must match path locale %q", p, locale, localeFromPath)
	}
	if strings.TrimSpace(file.Namespace) != namespaceFromPath {
		return fmt.Errorf("catalog %s: namespace %q must match filename %q", p, file.Namespace, namespaceFromPath)
	}
	if file.Messages == nil {
		return fmt.Errorf("catalog %s: messages map is required", p)
	}

	messages, ok := b.locales[locale]
	if !ok {
		messages = map[string]string{}
		b.locales[locale] = messages
	}
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("catalog %s: message key cannot be blank", p)
		}
		if _, exists := messages[key]; exists {
			return fmt.Errorf("catalog %s: duplicate key %q in locale %q", p, key, locale)
		}
		messages[key] = value
	}
	return nil
}

// Register makes every message available to x/text printers
func (b *Bundle) Register() {
	for locale, messages := range b.locales {
		tag := language.Make(locale)
		for key, value := range messages {
			_ = message.SetString(tag, key, value)
		}
	}
}

// Locales returns the loaded locale identifiers, sorted
func (b *Bundle) Locales() []string {
	out := make([]string, 0, len(b.locales))
	for locale := range b.locales {
		out = append(out, locale)
	}
	sort.Strings(out)
	return out
}

// Message returns the value of key in locale, falling back to BaseLocale
func (b *Bundle) Message(locale, key string) (string, bool) {
	if value, ok := b.locales[locale][key]; ok {
		return value, true
	}
	value, ok := b.locales[BaseLocale][key]
	return value, ok
}

// SupportedTags lists the languages with a catalog. The first one is the default.
func SupportedTags() []language.Tag {
	return []language.Tag{language.English, language.Japanese}
}

// DefaultTag is used when nothing better matches
func DefaultTag() language.Tag {
	return language.English
}

// ParseTag matches a user supplied language against the supported ones.
// ok is false when raw is empty or not a valid BCP 47 tag.
func ParseTag(raw string) (language.Tag, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultTag(), false
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return DefaultTag(), false
	}
	return MatchTags([]language.Tag{tag}), true
}

// MatchTags picks the best supported language for a preference list
func MatchTags(tags []language.Tag) language.Tag {
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return SupportedTags()[index]
}

// ParseAcceptLanguage resolves an Accept-Language header value
func ParseAcceptLanguage(header string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return DefaultTag()
	}
	return MatchTags(tags)
}

// BadgeKey returns the catalog key of a badge field ("name" or "description")
func BadgeKey(id domain.BadgeID, field string) string {
	return "badge." + string(id) + "." + field
}

// LocalizeBadges returns copies of badges with name and description in tag's language.
// Badges without a translation keep their metadata.
func LocalizeBadges(badges []domain.Badge, tag language.Tag) []domain.Badge {
	printer := message.NewPrinter(tag)
	out := make([]domain.Badge, len(badges))
	for i, badge := range badges {
		out[i] = badge
		if key := BadgeKey(badge.ID, "name"); hasMessage(key) {
			out[i].Name = printer.Sprintf(key)
		}
		if key := BadgeKey(badge.ID, "description"); hasMessage(key) {
			out[i].Description = printer.Sprintf(key)
		}
	}
	return out
}

func hasMessage(key string) bool {
	_, ok := defaultBundle.Message(BaseLocale, key)
	return ok
}
