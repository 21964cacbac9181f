// Package config parses the weave.toml project manifest: the ambient
// configuration a compiler driver needs (trivia retention, recursion
// limits, source-size bounds) that the core lexer/parser packages
// themselves stay silent about.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// TriviaMode mirrors syntax.TriviaMode as a TOML-friendly string so the
// manifest format doesn't leak the core package's numeric enum.
type TriviaMode string

const (
	TriviaModeAll               TriviaMode = "all"
	TriviaModeDocumentationOnly TriviaMode = "documentation-only"
	TriviaModeNone              TriviaMode = "none"
)

// Manifest is the parsed form of a weave.toml project file.
type Manifest struct {
	Project ProjectInfo `toml:"project"`
	Parser  ParserInfo  `toml:"parser"`
	// UnknownFields lists any top-level keys present in the manifest
	// but not recognized by this version of the driver.
	UnknownFields []string `toml:"-"`
}

// ProjectInfo is the [project] table.
type ProjectInfo struct {
	Name       string `toml:"name"`
	Entrypoint string `toml:"entrypoint"`
	Version    string `toml:"version,omitempty"`
}

// ParserInfo is the [parser] table: knobs for the lexer/parser that a
// manifest can override per project.
type ParserInfo struct {
	// Trivia selects how much trivia the lexer retains. Empty means
	// TriviaModeAll (the lossless default).
	Trivia TriviaMode `toml:"trivia,omitempty"`
	// MaxNestingDepth overrides the parser's recursion-depth guard.
	// Zero means "use the parser's built-in default."
	MaxNestingDepth int `toml:"max-nesting-depth,omitempty"`
	// MaxSourceBytes rejects files larger than this before they ever
	// reach the lexer. Zero means "no limit."
	MaxSourceBytes int64 `toml:"max-source-bytes,omitempty"`
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse parses manifest TOML from an in-memory buffer.
func Parse(data []byte) (*Manifest, error) {
	var raw struct {
		Project ProjectInfo `toml:"project"`
		Parser  ParserInfo  `toml:"parser"`
	}
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	var unknown []string
	for _, key := range meta.Undecoded() {
		unknown = append(unknown, key.String())
	}

	if raw.Project.Name == "" {
		return nil, fmt.Errorf("manifest is missing required field project.name")
	}
	if raw.Project.Entrypoint == "" {
		return nil, fmt.Errorf("manifest is missing required field project.entrypoint")
	}

	return &Manifest{
		Project:       raw.Project,
		Parser:        raw.Parser,
		UnknownFields: unknown,
	}, nil
}
