// Package scanner enumerates asset files for validated sub-groups.
package scanner

import (
	"path"
	"strings"

	"github.com/spf13/afero"

	"github.com/spiderkit/spider/internal/config"
)

// Asset is one discovered file: the slash-separated path as it will appear
// in generated constants, and the bare file name without its extension.
type Asset struct {
	Path string
	Name string
}

// Scan lists the asset files of a group's sub-groups. Each declared path is
// enumerated non-recursively in declaration order; within a directory the
// listing is lexicographic, so output is deterministic across runs.
// Directories, dot-files, and files outside the recognized extension set
// are skipped. An empty result is valid.
func Scan(fs afero.Fs, subGroups []config.SubGroup) ([]Asset, error) {
	var assets []Asset
	for _, sg := range subGroups {
		found, err := scanDir(fs, sg.Path, sg.Types)
		if err != nil {
			return nil, err
		}
		assets = append(assets, found...)
	}
	return assets, nil
}

func scanDir(fs afero.Fs, dir string, types []string) ([]Asset, error) {
	recognized := typeSet(types)

	// afero.ReadDir sorts entries by name.
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, err
	}

	var assets []Asset
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		ext := strings.ToLower(path.Ext(name))
		if !recognized[ext] {
			continue
		}
		assets = append(assets, Asset{
			Path: path.Join(dir, name),
			Name: strings.TrimSuffix(name, path.Ext(name)),
		})
	}
	return assets, nil
}

func typeSet(types []string) map[string]bool {
	if len(types) == 0 {
		types = DefaultTypes
	}
	set := make(map[string]bool, len(types))
	for _, t := range types {
		if n := NormalizeExtension(t); n != "" {
			set[n] = true
		}
	}
	return set
}
