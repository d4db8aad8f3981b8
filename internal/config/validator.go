package config

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/spf13/afero"

	"github.com/spiderkit/spider/internal/errors"
)

// Options control how a raw config tree is validated.
type Options struct {
	// AllowEmpty tolerates a config that declares nothing to generate.
	// Used by introspection callers such as `spider validate`.
	AllowEmpty bool

	// FontsOnly validates the fonts declaration and skips the rest of the
	// document.
	FontsOnly bool
}

// Recognized key shapes. Anything else inside a group or sub-group is a
// schema mismatch.
var (
	groupKeys    = map[string]bool{"class_name": true, "path": true, "sub_groups": true, "types": true}
	subGroupKeys = map[string]bool{"path": true, "types": true}
)

// Validate runs schema validation over a raw config tree without building
// a model. It returns nil when the document is valid.
func Validate(fs afero.Fs, raw RawConfigNode, opts Options) error {
	_, err := Parse(fs, raw, opts)
	return err
}

// Parse validates a raw config tree and builds the SpiderConfiguration.
// Checks run in a fixed order and the first failure wins: exactly one
// classified error is reported per invocation. Structural checks run
// before filesystem existence checks, and class-name presence is checked
// before class-name content.
func Parse(fs afero.Fs, raw RawConfigNode, opts Options) (*SpiderConfiguration, error) {
	groupsVal, groupsPresent := raw["groups"]
	fontsVal, fontsPresent := raw["fonts"]

	if !opts.FontsOnly && !opts.AllowEmpty &&
		groupsAbsentOrEmpty(groupsVal, groupsPresent) && !fontsTruthy(fontsVal) {
		return nil, errors.New(errors.KindNothingToGenerate)
	}

	var fonts FontsConfig
	if fontsPresent && fontsVal != nil {
		switch v := fontsVal.(type) {
		case bool:
			fonts.Enabled = v
		case map[string]any:
			fonts.Families = v
		default:
			return nil, errors.New(errors.KindInvalidFontsConfig)
		}
	}

	globals := parseGlobals(raw, fonts)

	if opts.FontsOnly {
		return &SpiderConfiguration{Globals: globals}, nil
	}

	var groups []Group
	if groupsPresent && groupsVal != nil {
		list, ok := groupsVal.([]any)
		if !ok {
			return nil, errors.New(errors.KindInvalidGroupsType)
		}
		for _, entry := range list {
			group, err := parseGroup(fs, entry)
			if err != nil {
				return nil, err
			}
			groups = append(groups, group)
		}
	}

	return &SpiderConfiguration{Groups: groups, Globals: globals}, nil
}

// groupsAbsentOrEmpty treats a missing key, an explicit null, and an empty
// list as "no groups declared". A present non-list value is not empty; it
// falls through to the groups type check.
func groupsAbsentOrEmpty(val any, present bool) bool {
	if !present || val == nil {
		return true
	}
	if list, ok := val.([]any); ok {
		return len(list) == 0
	}
	return false
}

// fontsTruthy reports whether the raw fonts value asks for generation.
// Absent, null, and false are falsy; true and any mapping are truthy.
// Invalid shapes count as truthy so they reach the fonts type check and
// get the precise error instead of nothingToGenerate.
func fontsTruthy(val any) bool {
	if val == nil {
		return false
	}
	if b, ok := val.(bool); ok {
		return b
	}
	return true
}

func parseGroup(fs afero.Fs, entry any) (Group, error) {
	group, ok := entry.(map[string]any)
	if !ok {
		return Group{}, errors.Newf(errors.KindValidationFailed, "group entry must be a mapping")
	}

	// Explicit nulls on required fields are reported before any other
	// shape complaint, naming the field.
	if v, present := group["path"]; present && v == nil {
		return Group{}, errors.Newf(errors.KindNullValue, "path")
	}
	if v, present := group["class_name"]; present && v == nil {
		return Group{}, errors.Newf(errors.KindNullValue, "class_name")
	}
	if list, ok := group["sub_groups"].([]any); ok {
		for _, sg := range list {
			if m, ok := sg.(map[string]any); ok {
				if v, present := m["path"]; present && v == nil {
					return Group{}, errors.Newf(errors.KindNullValue, "path")
				}
			}
		}
	}

	// Schema check runs before path-presence so a misspelled key such as
	// `paths` reports the mismatch instead of a misleading missing-path
	// error.
	if key := firstUnknownKey(group, groupKeys); key != "" {
		return Group{}, errors.Newf(errors.KindValidationFailed,
			fmt.Sprintf("unrecognized key %q in group", key))
	}

	subGroups, err := resolveSubGroups(group)
	if err != nil {
		return Group{}, err
	}
	if len(subGroups) == 0 {
		return Group{}, errors.New(errors.KindNoPathInGroup)
	}

	for _, sg := range subGroups {
		if strings.Contains(sg.Path, "*") {
			return Group{}, errors.Newf(errors.KindNoWildcardInPath, sg.Path)
		}
	}
	for _, sg := range subGroups {
		isDir, err := afero.DirExists(fs, sg.Path)
		if err != nil || !isDir {
			return Group{}, errors.Newf(errors.KindPathNotExists, sg.Path)
		}
	}

	nameVal, present := group["class_name"]
	if !present {
		return Group{}, errors.New(errors.KindNoClassName)
	}
	name, ok := nameVal.(string)
	if !ok {
		return Group{}, errors.Newf(errors.KindValidationFailed, "class_name must be a string")
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Group{}, errors.New(errors.KindEmptyClassName)
	}
	if strings.IndexFunc(trimmed, unicode.IsSpace) >= 0 {
		return Group{}, errors.New(errors.KindClassNameContainsSpaces)
	}

	return Group{ClassName: trimmed, SubGroups: subGroups}, nil
}

// resolveSubGroups normalizes the two group forms into a sub-group list:
// a direct path becomes one implicit sub-group carrying the group-level
// types, an explicit sub_groups list is taken in declaration order with
// group-level types as the fallback. Returns an empty list when neither
// form is usable; the caller turns that into the missing-path error.
func resolveSubGroups(group map[string]any) ([]SubGroup, error) {
	pathVal, pathPresent := group["path"]
	sgVal, sgPresent := group["sub_groups"]

	if pathPresent && sgPresent {
		return nil, errors.Newf(errors.KindValidationFailed,
			"group declares both path and sub_groups")
	}

	groupTypes, err := parseTypes(group["types"])
	if err != nil {
		return nil, err
	}

	if pathPresent {
		path, ok := pathVal.(string)
		if !ok {
			return nil, errors.Newf(errors.KindValidationFailed, "path must be a string")
		}
		if strings.TrimSpace(path) == "" {
			return nil, nil
		}
		return []SubGroup{{Path: path, Types: groupTypes}}, nil
	}

	if !sgPresent || sgVal == nil {
		return nil, nil
	}
	list, ok := sgVal.([]any)
	if !ok {
		return nil, errors.Newf(errors.KindValidationFailed, "sub_groups must be a list")
	}

	var out []SubGroup
	for _, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			return nil, errors.Newf(errors.KindValidationFailed, "sub_group entry must be a mapping")
		}
		if key := firstUnknownKey(m, subGroupKeys); key != "" {
			return nil, errors.Newf(errors.KindValidationFailed,
				fmt.Sprintf("unrecognized key %q in sub_group", key))
		}
		pathVal, present := m["path"]
		if !present {
			return nil, errors.New(errors.KindNoPathInGroup)
		}
		path, ok := pathVal.(string)
		if !ok {
			return nil, errors.Newf(errors.KindValidationFailed, "path must be a string")
		}
		types, err := parseTypes(m["types"])
		if err != nil {
			return nil, err
		}
		if types == nil {
			types = groupTypes
		}
		out = append(out, SubGroup{Path: path, Types: types})
	}

	return out, nil
}

func parseTypes(val any) ([]string, error) {
	if val == nil {
		return nil, nil
	}
	list, ok := val.([]any)
	if !ok {
		return nil, errors.Newf(errors.KindValidationFailed, "types must be a list of strings")
	}
	out := make([]string, 0, len(list))
	for _, entry := range list {
		s, ok := entry.(string)
		if !ok {
			return nil, errors.Newf(errors.KindValidationFailed, "types must be a list of strings")
		}
		out = append(out, s)
	}
	return out, nil
}

func parseGlobals(raw RawConfigNode, fonts FontsConfig) Globals {
	return Globals{
		GenerateTests:     boolAt(raw, "generate_tests"),
		NoComments:        boolAt(raw, "no_comments"),
		Export:            boolAt(raw, "export"),
		UsePartOf:         boolAt(raw, "use_part_of"),
		UseReferencesList: boolAt(raw, "use_references_list"),
		Package:           stringAt(raw, "package", DefaultPackage),
		Fonts:             fonts,
	}
}

func boolAt(raw RawConfigNode, key string) bool {
	b, _ := raw[key].(bool)
	return b
}

func stringAt(raw RawConfigNode, key, fallback string) string {
	if s, ok := raw[key].(string); ok && strings.TrimSpace(s) != "" {
		return strings.TrimSpace(s)
	}
	return fallback
}

// firstUnknownKey returns the lexicographically first key not present in
// the recognized set, keeping the reported error deterministic across map
// iteration orders.
func firstUnknownKey(m map[string]any, recognized map[string]bool) string {
	var unknown []string
	for key := range m {
		if !recognized[key] {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return ""
	}
	sort.Strings(unknown)
	return unknown[0]
}
