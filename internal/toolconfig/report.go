package toolconfig

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings is wrapped by every error produced from a Report.
var ErrInvalidSettings = errors.New("invalid tooling settings")

// Finding is a single violated requirement.
type Finding struct {
	// Key is the dotted key within the tooling section.
	Key string `yaml:"key"`
	// Message describes the violation.
	Message string `yaml:"message"`
}

// Report is the outcome of validating one tooling section.
type Report struct {
	// File is the metadata file path.
	File string `yaml:"file"`
	// Section is the dotted tooling section path.
	Section string `yaml:"section"`
	// Findings lists every violated requirement in check order.
	Findings []Finding `yaml:"findings"`
}

// OK reports whether no requirement was violated.
func (r *Report) OK() bool {
	return len(r.Findings) == 0
}

// HasFinding reports whether a finding exists for key.
func (r *Report) HasFinding(key string) bool {
	for _, f := range r.Findings {
		if f.Key == key {
			return true
		}
	}

	return false
}

// Err joins all findings into one error, or returns nil if there are none.
// Every joined error wraps ErrInvalidSettings.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}

	errs := make([]error, 0, len(r.Findings))
	for _, f := range r.Findings {
		errs = append(errs, fmt.Errorf("%w: %s [%s] %s: %s", ErrInvalidSettings, r.File, r.Section, f.Key, f.Message))
	}

	return errors.Join(errs...)
}

// YAML renders the report as a YAML document.
func (r *Report) YAML() ([]byte, error) {
	out, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	return out, nil
}

func (r *Report) add(key, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{
		Key:     key,
		Message: fmt.Sprintf(format, args...),
	})
}
