//go:build property
// +build property

package generator

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestSynthesizeProperties checks identifier invariants over arbitrary
// file names.
func TestSynthesizeProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	isLegalIdentifier := func(name string) bool {
		if name == "" {
			return false
		}
		if name[0] >= '0' && name[0] <= '9' {
			return false
		}
		for _, r := range name {
			if !isASCIIAlnum(r) && r != '_' {
				return false
			}
		}
		return true
	}

	properties.Property("always a legal identifier", prop.ForAll(
		func(fileName string) bool {
			return isLegalIdentifier(NewScope().Synthesize(fileName))
		},
		gen.AnyString(),
	))

	properties.Property("unique within a scope", prop.ForAll(
		func(fileNames []string) bool {
			scope := NewScope()
			seen := make(map[string]bool)
			for _, f := range fileNames {
				name := scope.Synthesize(f)
				if seen[name] {
					return false
				}
				seen[name] = true
			}
			return true
		},
		gen.SliceOf(gen.RegexMatch(`^[a-zA-Z0-9_-]{1,12}\.(png|jpg|svg)$`)),
	))

	properties.TestingRun(t)
}
