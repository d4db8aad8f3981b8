package config

import (
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/spiderkit/spider/internal/errors"
)

// DefaultFileNames are the config file names probed, in order, when no
// explicit path is given.
var DefaultFileNames = []string{"spider.yaml", "spider.yml", "spider.json"}

// Locate resolves the config file path. An explicit path wins; otherwise
// the default file names are probed in the working directory.
func Locate(fs afero.Fs, explicit string) (string, error) {
	if explicit != "" {
		ok, err := afero.Exists(fs, explicit)
		if err != nil {
			return "", errors.Wrap(errors.KindConfigNotFound, explicit, err)
		}
		if !ok {
			return "", errors.Newf(errors.KindConfigNotFound, explicit)
		}
		return explicit, nil
	}

	for _, name := range DefaultFileNames {
		ok, err := afero.Exists(fs, name)
		if err != nil {
			return "", errors.Wrap(errors.KindConfigNotFound, name, err)
		}
		if ok {
			return name, nil
		}
	}

	return "", errors.Newf(errors.KindConfigNotFound, strings.Join(DefaultFileNames, ", "))
}

// Load reads and decodes the config document at path into a raw tree.
// YAML is a superset of JSON, so a single decoder covers both formats.
// Explicit nulls survive as nil values so the validator can distinguish
// a null field from an absent one.
func Load(fs afero.Fs, path string) (RawConfigNode, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrap(errors.KindConfigNotFound, path, err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.Newf(errors.KindEmptyConfig, path)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(errors.KindInvalidConfig, path, err)
	}
	if raw == nil {
		return nil, errors.Newf(errors.KindEmptyConfig, path)
	}

	return raw, nil
}

// pubspec is the slice of a Flutter pubspec.yaml the loader cares about.
type pubspec struct {
	Name string `yaml:"name"`
}

// ProjectName derives the project name from pubspec.yaml in the working
// directory. The name feeds generated test headers and package imports; it
// is never user-supplied through the spider config. Falls back to "app"
// when no pubspec is readable.
func ProjectName(fs afero.Fs) string {
	data, err := afero.ReadFile(fs, "pubspec.yaml")
	if err != nil {
		return "app"
	}

	var ps pubspec
	if err := yaml.Unmarshal(data, &ps); err != nil || strings.TrimSpace(ps.Name) == "" {
		return "app"
	}

	return strings.TrimSpace(ps.Name)
}
