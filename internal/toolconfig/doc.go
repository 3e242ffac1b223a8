// Package toolconfig loads the linting and formatting section of a project
// metadata file (for example the [tool.ruff] table of pyproject.toml) and
// validates it against a set of requirements.
//
// TOML files are decoded with go-toml and YAML files with yaml.v3. Table and
// key names are case-sensitive, so [Tool.Ruff] is not [tool.ruff].
// Validation never stops at the first problem: every violated requirement
// becomes a Finding in the returned Report.
package toolconfig
