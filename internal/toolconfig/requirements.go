package toolconfig

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/oshokin/fake-useragent/internal/utils"
)

// Requirements describes what a tooling section must declare.
// Zero-valued fields are not checked.
type Requirements struct {
	// TargetVersions lists the accepted target version markers.
	TargetVersions []string
	// TargetVersion is the exact expected target version marker.
	TargetVersion string
	// MinLineLength is the smallest accepted line length.
	MinLineLength int
	// MaxLineLength is the largest accepted line length.
	MaxLineLength int
	// LineLength is the exact expected line length.
	LineLength int
	// IndentWidth is the exact expected indentation width.
	IndentWidth int
	// IncludeCovers lists fragments that at least one include pattern must contain each.
	IncludeCovers []string
	// IncludePatterns lists include patterns that must be present verbatim.
	IncludePatterns []string
	// Select lists rule categories that must be selected.
	Select []string
	// Ignore lists rule codes that must be suppressed.
	Ignore []string
	// QuoteStyle is the expected quote style.
	QuoteStyle string
	// IndentStyle is the expected indentation style.
	IndentStyle string
}

// DefaultRequirements returns the baseline every project configuration must satisfy:
// explicit sections and values, a modern target version, a sane line length
// and the core rule categories.
func DefaultRequirements() Requirements {
	return Requirements{
		TargetVersions: []string{"py310", "py311", "py312", "py313", "py314"},
		MinLineLength:  79,
		MaxLineLength:  120,
		IndentWidth:    4,
		IncludeCovers:  []string{"src", "tests", "pyproject.toml"},
		Select:         []string{"E", "F", "I", "UP"},
		QuoteStyle:     "double",
		IndentStyle:    "space",
	}
}

// ProjectRequirements returns DefaultRequirements tightened to the exact values this project uses.
func ProjectRequirements() Requirements {
	r := DefaultRequirements()

	r.TargetVersion = "py310"
	r.LineLength = 100
	r.IncludePatterns = []string{"src/**/*.py", "tests/**/*.py", "**/pyproject.toml"}
	r.Ignore = []string{"B905"}

	return r
}

// Validate checks settings against the requirements and reports every violation.
func Validate(s *Settings, r Requirements) *Report {
	report := &Report{
		File:    s.File,
		Section: s.Section,
	}

	validateTargetVersion(report, s, r)
	validateLineLength(report, s, r)
	validateIndentWidth(report, s, r)
	validateInclude(report, s, r)
	validateLint(report, s, r)
	validateFormat(report, s, r)

	return report
}

func validateTargetVersion(report *Report, s *Settings, r Requirements) {
	if len(r.TargetVersions) == 0 && r.TargetVersion == "" {
		return
	}

	if s.TargetVersion == nil {
		report.add(KeyTargetVersion, "must be set")

		return
	}

	if len(r.TargetVersions) > 0 && !slices.Contains(r.TargetVersions, *s.TargetVersion) {
		report.add(KeyTargetVersion, "'%s' is not one of %s", *s.TargetVersion, strings.Join(r.TargetVersions, ", "))

		return
	}

	if r.TargetVersion != "" && *s.TargetVersion != r.TargetVersion {
		report.add(KeyTargetVersion, "expected '%s', got '%s'", r.TargetVersion, *s.TargetVersion)
	}
}

func validateLineLength(report *Report, s *Settings, r Requirements) {
	if r.MinLineLength == 0 && r.MaxLineLength == 0 && r.LineLength == 0 {
		return
	}

	if s.LineLength == nil {
		report.add(KeyLineLength, "must be set")

		return
	}

	lineLength := *s.LineLength

	if (r.MinLineLength > 0 && lineLength < r.MinLineLength) || (r.MaxLineLength > 0 && lineLength > r.MaxLineLength) {
		report.add(KeyLineLength, "%d is outside the range %s", lineLength, lineLengthRange(r))

		return
	}

	if r.LineLength > 0 && lineLength != r.LineLength {
		report.add(KeyLineLength, "expected %d, got %d", r.LineLength, lineLength)
	}
}

// lineLengthRange formats the accepted line length range, leaving an unset bound open.
func lineLengthRange(r Requirements) string {
	var lower, upper string

	if r.MinLineLength > 0 {
		lower = strconv.Itoa(r.MinLineLength)
	}

	if r.MaxLineLength > 0 {
		upper = strconv.Itoa(r.MaxLineLength)
	}

	return lower + ".." + upper
}

func validateIndentWidth(report *Report, s *Settings, r Requirements) {
	if r.IndentWidth == 0 {
		return
	}

	switch {
	case s.IndentWidth == nil:
		report.add(KeyIndentWidth, "must be set")
	case *s.IndentWidth != r.IndentWidth:
		report.add(KeyIndentWidth, "expected %d, got %d", r.IndentWidth, *s.IndentWidth)
	}
}

func validateInclude(report *Report, s *Settings, r Requirements) {
	if len(r.IncludeCovers) == 0 && len(r.IncludePatterns) == 0 {
		return
	}

	if len(s.Include) == 0 {
		report.add(KeyInclude, "must list the files to check")

		return
	}

	for _, fragment := range r.IncludeCovers {
		covered := slices.ContainsFunc(s.Include, func(pattern string) bool {
			return strings.Contains(pattern, fragment)
		})

		if !covered {
			report.add(KeyInclude, "no pattern covers '%s'", fragment)
		}
	}

	if ok, missing := utils.ContainsAll(s.Include, r.IncludePatterns); !ok {
		report.add(KeyInclude, "missing patterns: %s", quoteAll(missing))
	}
}

func validateLint(report *Report, s *Settings, r Requirements) {
	if s.Lint == nil {
		report.add(KeyLint, "section must exist")

		return
	}

	if len(s.Lint.Select) == 0 {
		report.add(KeyLintSelect, "at least one rule category must be selected")
	} else if ok, missing := utils.ContainsAll(s.Lint.Select, r.Select); !ok {
		report.add(KeyLintSelect, "missing rule categories: %s", quoteAll(missing))
	}

	if ok, missing := utils.ContainsAll(s.Lint.Ignore, r.Ignore); !ok {
		report.add(KeyLintIgnore, "missing ignored rules: %s", quoteAll(missing))
	}
}

func validateFormat(report *Report, s *Settings, r Requirements) {
	if s.Format == nil {
		report.add(KeyFormat, "section must exist")

		return
	}

	validateStyle(report, KeyQuoteStyle, s.Format.QuoteStyle, r.QuoteStyle)
	validateStyle(report, KeyIndentStyle, s.Format.IndentStyle, r.IndentStyle)
}

func validateStyle(report *Report, key string, actual *string, expected string) {
	if expected == "" {
		return
	}

	switch {
	case actual == nil:
		report.add(key, "must be set")
	case *actual != expected:
		report.add(key, "expected '%s', got '%s'", expected, *actual)
	}
}

func quoteAll(values []string) string {
	return strings.Join(utils.Map(values, func(v string) string {
		return fmt.Sprintf("'%s'", v)
	}), ", ")
}
