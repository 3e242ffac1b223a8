package toolconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/fake-useragent/internal/constants"
)

const (
	// DefaultSection is the tooling section checked when none is given.
	DefaultSection = "tool.ruff"

	// DefaultCacheSize is the default number of parsed files kept by a Loader.
	DefaultCacheSize = 64
)

// Loader reads tooling sections from metadata files.
// Parsed settings are cached by path and section and reused while the file is unchanged.
// Returned settings are shared between callers and must not be modified.
type Loader struct {
	// cache maps "<absolute path>#<section>" to previously parsed settings.
	cache *lru.Cache[string, cachedSettings]
}

type cachedSettings struct {
	modTime  time.Time
	size     int64
	settings *Settings
}

// NewLoader creates a Loader caching up to cacheSize parsed sections.
// A non-positive cacheSize defaults to DefaultCacheSize.
func NewLoader(cacheSize int) (*Loader, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}

	cache, err := lru.New[string, cachedSettings](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create settings cache: %w", err)
	}

	return &Loader{cache: cache}, nil
}

// Load reads the tooling section from the metadata file at path.
// An empty section means DefaultSection.
// Table and key names are matched case-sensitively, as TOML defines them.
func (l *Loader) Load(path, section string) (*Settings, error) {
	if section == "" {
		section = DefaultSection
	}

	unmarshal, err := unmarshalerOf(path)
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve metadata file path: %w", err)
	}

	stat, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata file: %w", err)
	}

	cacheKey := absPath + "#" + section

	if cached, ok := l.cache.Get(cacheKey); ok && cached.modTime.Equal(stat.ModTime()) && cached.size == stat.Size() {
		return cached.settings, nil
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata file: %w", err)
	}

	var document map[string]any
	if err = unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("failed to parse metadata file: %w", err)
	}

	table, err := lookupSection(document, section)
	if err != nil {
		return nil, fmt.Errorf("%w in %s", err, path)
	}

	settings, err := decodeSettings(table)
	if err != nil {
		return nil, fmt.Errorf("failed to decode [%s] in %s: %w", section, path, err)
	}

	settings.File = path
	settings.Section = section

	l.cache.Add(cacheKey, cachedSettings{
		modTime:  stat.ModTime(),
		size:     stat.Size(),
		settings: settings,
	})

	return settings, nil
}

func unmarshalerOf(path string) (func([]byte, any) error, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case constants.ExtensionTOML:
		return toml.Unmarshal, nil
	case constants.ExtensionYAML, constants.ExtensionYML:
		return yaml.Unmarshal, nil
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedFormat, ext)
	}
}

// lookupSection descends into document along the dotted section path.
func lookupSection(document map[string]any, section string) (map[string]any, error) {
	table := document

	for i, name := range strings.Split(section, ".") {
		raw, ok := table[name]
		if !ok {
			if variant, found := foldedKey(table, name); found {
				return nil, fmt.Errorf("%w: [%s] (found '%s'; table names are case-sensitive)",
					ErrSectionNotFound, section, variant)
			}

			return nil, fmt.Errorf("%w: [%s]", ErrSectionNotFound, section)
		}

		next, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: [%s] must be a table, got %T",
				ErrInvalidValueType, strings.Join(strings.Split(section, ".")[:i+1], "."), raw)
		}

		table = next
	}

	return table, nil
}

// foldedKey returns a key of table that equals name only when case is ignored.
func foldedKey(table map[string]any, name string) (string, bool) {
	for key := range table {
		if key != name && strings.EqualFold(key, name) {
			return key, true
		}
	}

	return "", false
}
