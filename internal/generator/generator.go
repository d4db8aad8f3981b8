// Package generator turns a validated spider configuration plus the live
// filesystem inventory into generated Dart source files: one reference
// class per group, an optional export/part aggregation file, an optional
// font family class, and optional existence-check tests.
//
// Generation assumes its input already passed validation and does not
// re-validate. Output is deterministic: groups and sub-groups in
// declaration order, directory listings in lexicographic order.
package generator

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/spiderkit/spider/internal/config"
	"github.com/spiderkit/spider/internal/logging"
	"github.com/spiderkit/spider/internal/scanner"
)

// FontFamilyClass is the class name used for generated font family
// references.
const FontFamilyClass = "FontFamily"

// Generator orchestrates scanning, identifier synthesis, rendering, and
// writing for one run.
type Generator struct {
	fs  afero.Fs
	out *Writer
	log logging.Logger
}

// New creates a generator reading assets from fs and writing output under
// outRoot.
func New(fs afero.Fs, outRoot string, log logging.Logger) *Generator {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Generator{
		fs:  fs,
		out: NewWriter(fs, outRoot),
		log: log.WithComponent("generator"),
	}
}

// Generate emits every output file for the configuration. The first
// failure aborts the run.
func (g *Generator) Generate(cfg *config.SpiderConfiguration) error {
	globals := cfg.Globals
	pkgDir := path.Join("lib", globals.Package)

	var classFiles []string
	var testCases []string

	for _, group := range cfg.Groups {
		assets, err := scanner.Scan(g.fs, group.SubGroups)
		if err != nil {
			return fmt.Errorf("scanning group %s: %w", group.ClassName, err)
		}

		scope := NewScope()
		references := make([]string, 0, len(assets))
		names := make([]string, 0, len(assets))
		for _, asset := range assets {
			name := scope.Synthesize(path.Base(asset.Path))
			references = append(references, RenderReference(DefaultProperties, name, asset.Path))
			names = append(names, name)
			if globals.GenerateTests {
				testCases = append(testCases, RenderTestCase(group.ClassName, name))
			}
		}

		var list string
		if globals.UseReferencesList {
			list = RenderReferencesList(DefaultProperties, names)
		}

		fileName := SnakeCase(group.ClassName) + ".dart"
		content := g.composeClassFile(globals, RenderClass(group.ClassName, references, list))
		if err := g.out.Write(fileName, pkgDir, content); err != nil {
			return err
		}
		g.log.Info("generated reference class",
			"class", group.ClassName, "file", path.Join(pkgDir, fileName), "references", len(references))
		classFiles = append(classFiles, fileName)
	}

	if len(globals.Fonts.Families) > 0 {
		fileName := SnakeCase(FontFamilyClass) + ".dart"
		content := g.composeClassFile(globals, renderFontFamilyClass(globals.Fonts.Families))
		if err := g.out.Write(fileName, pkgDir, content); err != nil {
			return err
		}
		g.log.Info("generated font family class", "file", path.Join(pkgDir, fileName))
		classFiles = append(classFiles, fileName)
	}

	if globals.Export && len(classFiles) > 0 {
		fileName := globals.Package + ".dart"
		content := RenderExportOrPart(classFiles, globals.NoComments, globals.UsePartOf) + "\n"
		if err := g.out.Write(fileName, pkgDir, content); err != nil {
			return err
		}
		g.log.Info("generated aggregation file", "file", path.Join(pkgDir, fileName))
	}

	if globals.GenerateTests {
		if err := g.writeTestFile(globals, classFiles, testCases); err != nil {
			return err
		}
	}

	return nil
}

// composeClassFile prepends the header and the part-of statement to a
// rendered class body according to the globals.
func (g *Generator) composeClassFile(globals config.Globals, body string) string {
	var parts []string
	if !globals.NoComments {
		parts = append(parts, RenderHeader(now()))
	}
	if globals.UsePartOf {
		parts = append(parts, fmt.Sprintf("part of '%s.dart';", globals.Package))
	}
	parts = append(parts, body)
	return strings.Join(parts, "\n\n") + "\n"
}

// renderFontFamilyClass builds the FontFamily class from the declared
// family map. Families are emitted in sorted order so output is stable
// regardless of map iteration.
func renderFontFamilyClass(families map[string]any) string {
	keys := make([]string, 0, len(families))
	for family := range families {
		keys = append(keys, family)
	}
	sort.Strings(keys)

	scope := NewScope()
	references := make([]string, 0, len(keys))
	for _, family := range keys {
		references = append(references, RenderReference(DefaultProperties, scope.Synthesize(family), family))
	}
	return RenderClass(FontFamilyClass, references, "")
}

func (g *Generator) writeTestFile(globals config.Globals, classFiles, cases []string) error {
	var imports []string
	if globals.Export {
		imports = []string{fmt.Sprintf("package:%s/%s/%s.dart", globals.ProjectName, globals.Package, globals.Package)}
	} else {
		for _, file := range classFiles {
			imports = append(imports, fmt.Sprintf("package:%s/%s/%s", globals.ProjectName, globals.Package, file))
		}
	}

	var header string
	if !globals.NoComments {
		header = RenderHeader(now())
	}

	var b strings.Builder
	_ = testFileTmpl.Execute(&b, testFileData{
		Header:   header,
		Imports:  imports,
		TestName: globals.ProjectName + " assets availability",
		Cases:    cases,
	})

	if err := g.out.Write("assets_test.dart", "test", b.String()); err != nil {
		return err
	}
	g.log.Info("generated asset tests", "cases", len(cases))
	return nil
}
