// Package config resolves a severity threshold from external text
// sources.
//
// Three grammars are supported, selected by file extension: flat
// KEY=VALUE env files, [section]-headed INI files, and YAML settings
// files. All of them feed values through core.ParseLevel, so quoting,
// whitespace, numeric levels, and the WARNING/ERR aliases behave
// identically everywhere.
//
// Two failure modes are kept distinct on purpose: ErrNotFound means
// the file itself was missing or unreadable, while ErrNoLevel means
// the file was read but held no valid level. Callers that only care
// about "did anything change" can treat both as a no-op; the logger
// engine reports file readability and key presence separately.
//
// Within one file, later valid assignments override earlier ones. In
// INI files a [logging], [log], [debug], or [debugging] section scopes
// acceptance; a key outside any recognized section only counts as a
// first-occurrence fallback when no section provides a value.
package config
