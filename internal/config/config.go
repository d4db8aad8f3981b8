// Package config provides the spider configuration model, the raw document
// loader, and the validation engine that turns an untyped config tree into
// a SpiderConfiguration.
//
// The loader is format-agnostic beyond YAML/JSON: it produces a plain
// map/list tree (RawConfigNode) and the validator consumes that tree
// without knowing where it came from. Validation is first-failure-wins:
// exactly one classified error is reported per invocation.
package config

// RawConfigNode is the untyped configuration tree as decoded from the
// config document: map[string]any for mappings, []any for sequences,
// nil for explicit nulls. It carries no invariants; the validator is
// responsible for rejecting malformed shapes.
type RawConfigNode = map[string]any

// SubGroup is a single asset directory declaration owned by a Group.
// Path is required, wildcard-free, and must exist as a directory. Types
// holds the declared extension tokens as written; an empty Types falls
// back to the built-in image set at scan time.
type SubGroup struct {
	Path  string
	Types []string
}

// Group maps to one generated reference class. A group is declared either
// with a direct path (which becomes a single implicit sub-group) or with an
// explicit sub_groups list; after validation both forms are normalized into
// SubGroups, preserving declaration order.
type Group struct {
	ClassName string
	SubGroups []SubGroup
}

// FontsConfig is the validated shape of the top-level fonts key. Families
// is non-nil only when fonts was declared as a mapping; its detail values
// are kept opaque.
type FontsConfig struct {
	Enabled  bool
	Families map[string]any
}

// Truthy reports whether the fonts declaration asks for font generation.
// A mapping counts as truthy even when empty.
func (f FontsConfig) Truthy() bool {
	return f.Enabled || f.Families != nil
}

// Globals holds per-run options that apply to every group.
type Globals struct {
	GenerateTests     bool
	NoComments        bool
	Export            bool
	UsePartOf         bool
	UseReferencesList bool
	Package           string
	ProjectName       string
	Fonts             FontsConfig
}

// SpiderConfiguration is the validated model for one generation run.
// It is built once by Parse and read-only thereafter.
type SpiderConfiguration struct {
	Groups  []Group
	Globals Globals
}

// DefaultPackage is the package directory used when the config does not
// declare one.
const DefaultPackage = "resources"
