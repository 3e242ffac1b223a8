package toolconfig

import (
	"errors"
	"fmt"
	"strings"
)

// Keys of the tooling section.
const (
	KeyTargetVersion = "target-version"
	KeyLineLength    = "line-length"
	KeyIndentWidth   = "indent-width"
	KeyInclude       = "include"
	KeyLint          = "lint"
	KeyLintSelect    = "lint.select"
	KeyLintIgnore    = "lint.ignore"
	KeyFormat        = "format"
	KeyQuoteStyle    = "format.quote-style"
	KeyIndentStyle   = "format.indent-style"
)

// Static error definitions for better error handling.
var (
	// ErrSectionNotFound indicates that the metadata file has no tooling section.
	ErrSectionNotFound = errors.New("tooling section not found")
	// ErrInvalidValueType indicates that a key holds a value of the wrong type.
	ErrInvalidValueType = errors.New("invalid value type")
	// ErrUnsupportedFormat indicates that the metadata file extension is not supported.
	ErrUnsupportedFormat = errors.New("unsupported metadata file format")
	// ErrKeyCaseMismatch indicates that a known key is spelled with different letter case.
	ErrKeyCaseMismatch = errors.New("key case mismatch")
)

// Settings is the tooling section of a metadata file.
// Pointer and nil-able fields are nil when the key is absent.
type Settings struct {
	// File is the path the settings were loaded from.
	File string
	// Section is the dotted path of the tooling section.
	Section string
	// TargetVersion is the target language version marker, e.g. "py310".
	TargetVersion *string
	// LineLength is the maximum line length.
	LineLength *int
	// IndentWidth is the indentation width.
	IndentWidth *int
	// Include lists the file globs the tool operates on.
	Include []string
	// Lint is the lint subsection.
	Lint *LintSettings
	// Format is the format subsection.
	Format *FormatSettings
}

// LintSettings is the lint subsection.
type LintSettings struct {
	// Select lists the enabled rule category codes.
	Select []string
	// Ignore lists the suppressed rule codes.
	Ignore []string
}

// FormatSettings is the format subsection.
type FormatSettings struct {
	// QuoteStyle is the preferred string quote style, e.g. "double".
	QuoteStyle *string
	// IndentStyle is the indentation style, e.g. "space".
	IndentStyle *string
}

// Leaf names of the keys inside their tables.
const (
	nameTargetVersion = "target-version"
	nameLineLength    = "line-length"
	nameIndentWidth   = "indent-width"
	nameInclude       = "include"
	nameLint          = "lint"
	nameFormat        = "format"
	nameSelect        = "select"
	nameIgnore        = "ignore"
	nameQuoteStyle    = "quote-style"
	nameIndentStyle   = "indent-style"
)

// decodeSettings extracts Settings from the decoded tooling table.
// Values are type-checked strictly: a quoted "100" is not a line length,
// and lint and format must be tables.
func decodeSettings(table map[string]any) (*Settings, error) {
	var (
		s   Settings
		err error
	)

	err = checkKeyCase(table, "",
		nameTargetVersion, nameLineLength, nameIndentWidth, nameInclude, nameLint, nameFormat)
	if err != nil {
		return nil, err
	}

	if s.TargetVersion, err = optionalString(table, nameTargetVersion, KeyTargetVersion); err != nil {
		return nil, err
	}

	if s.LineLength, err = optionalInt(table, nameLineLength, KeyLineLength); err != nil {
		return nil, err
	}

	if s.IndentWidth, err = optionalInt(table, nameIndentWidth, KeyIndentWidth); err != nil {
		return nil, err
	}

	if s.Include, err = optionalStrings(table, nameInclude, KeyInclude); err != nil {
		return nil, err
	}

	lint, err := optionalTable(table, nameLint, KeyLint, nameSelect, nameIgnore)
	if err != nil {
		return nil, err
	}

	if lint != nil {
		s.Lint = new(LintSettings)

		if s.Lint.Select, err = optionalStrings(lint, nameSelect, KeyLintSelect); err != nil {
			return nil, err
		}

		if s.Lint.Ignore, err = optionalStrings(lint, nameIgnore, KeyLintIgnore); err != nil {
			return nil, err
		}
	}

	format, err := optionalTable(table, nameFormat, KeyFormat, nameQuoteStyle, nameIndentStyle)
	if err != nil {
		return nil, err
	}

	if format != nil {
		s.Format = new(FormatSettings)

		if s.Format.QuoteStyle, err = optionalString(format, nameQuoteStyle, KeyQuoteStyle); err != nil {
			return nil, err
		}

		if s.Format.IndentStyle, err = optionalString(format, nameIndentStyle, KeyIndentStyle); err != nil {
			return nil, err
		}
	}

	return &s, nil
}

// checkKeyCase rejects keys of table that match one of names only when case is ignored.
func checkKeyCase(table map[string]any, prefix string, names ...string) error {
	for key := range table {
		for _, name := range names {
			if key != name && strings.EqualFold(key, name) {
				return fmt.Errorf("%w: '%s%s' must be written as '%s%s'", ErrKeyCaseMismatch, prefix, key, prefix, name)
			}
		}
	}

	return nil
}

func optionalTable(table map[string]any, name, key string, names ...string) (map[string]any, error) {
	raw, ok := table[name]
	if !ok {
		return nil, nil //nolint:nilnil // Absent table.
	}

	sub, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a table, got %T", ErrInvalidValueType, key, raw)
	}

	if err := checkKeyCase(sub, name+".", names...); err != nil {
		return nil, err
	}

	return sub, nil
}

func optionalString(table map[string]any, name, key string) (*string, error) {
	raw, ok := table[name]
	if !ok {
		return nil, nil //nolint:nilnil // Absent key.
	}

	value, ok := raw.(string)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidValueType, key, raw)
	}

	return &value, nil
}

func optionalInt(table map[string]any, name, key string) (*int, error) {
	raw, ok := table[name]
	if !ok {
		return nil, nil //nolint:nilnil // Absent key.
	}

	var value int

	// TOML decodes integers as int64, YAML as int.
	switch v := raw.(type) {
	case int:
		value = v
	case int64:
		value = int(v)
	default:
		return nil, fmt.Errorf("%w: %s must be an integer, got %T", ErrInvalidValueType, key, raw)
	}

	return &value, nil
}

func optionalStrings(table map[string]any, name, key string) ([]string, error) {
	raw, ok := table[name]
	if !ok {
		return nil, nil
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s must be a list of strings, got %T", ErrInvalidValueType, key, raw)
	}

	// Present but empty is distinct from absent.
	values := make([]string, 0, len(items))

	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] must be a string, got %T", ErrInvalidValueType, key, i, item)
		}

		values = append(values, s)
	}

	return values, nil
}
