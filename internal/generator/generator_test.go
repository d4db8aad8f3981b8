package generator

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spiderkit/spider/internal/config"
)

func generatorFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, f := range []string{
		"assets/images/avatar.png",
		"assets/images/banner.jpg",
		"assets/icons/home.svg",
	} {
		require.NoError(t, afero.WriteFile(fs, f, []byte{1}, 0o644))
	}
	return fs
}

func baseConfig() *config.SpiderConfiguration {
	return &config.SpiderConfiguration{
		Groups: []config.Group{
			{ClassName: "Assets", SubGroups: []config.SubGroup{{Path: "assets/images"}}},
		},
		Globals: config.Globals{
			Package:     "resources",
			ProjectName: "demo",
		},
	}
}

func readOutput(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err, "expected generated file %s", path)
	return string(data)
}

func TestGenerateSingleGroup(t *testing.T) {
	fixedNow(t)
	fs := generatorFs(t)

	require.NoError(t, New(fs, "", nil).Generate(baseConfig()))

	content := readOutput(t, fs, "lib/resources/assets.dart")
	assert.Contains(t, content, "class Assets {")
	assert.Contains(t, content, "Assets._();")
	assert.Contains(t, content, "static const String avatar = 'assets/images/avatar.png';")
	assert.Contains(t, content, "static const String banner = 'assets/images/banner.jpg';")
	assert.Contains(t, content, "Generated by spider")
	assert.NotContains(t, content, "values = [")
}

func TestGenerateNoComments(t *testing.T) {
	fs := generatorFs(t)
	cfg := baseConfig()
	cfg.Globals.NoComments = true

	require.NoError(t, New(fs, "", nil).Generate(cfg))

	content := readOutput(t, fs, "lib/resources/assets.dart")
	assert.NotContains(t, content, "Generated by spider")
}

func TestGenerateReferencesList(t *testing.T) {
	fs := generatorFs(t)
	cfg := baseConfig()
	cfg.Globals.UseReferencesList = true

	require.NoError(t, New(fs, "", nil).Generate(cfg))

	content := readOutput(t, fs, "lib/resources/assets.dart")
	assert.Contains(t, content, "static const List<String> values = [avatar, banner];")
}

func TestGenerateExportFile(t *testing.T) {
	fs := generatorFs(t)
	cfg := baseConfig()
	cfg.Globals.Export = true
	cfg.Globals.NoComments = true
	cfg.Groups = append(cfg.Groups, config.Group{
		ClassName: "MyIcons",
		SubGroups: []config.SubGroup{{Path: "assets/icons", Types: []string{"svg"}}},
	})

	require.NoError(t, New(fs, "", nil).Generate(cfg))

	content := readOutput(t, fs, "lib/resources/resources.dart")
	assert.Equal(t, "export 'assets.dart';\nexport 'my_icons.dart';\n", content)
}

func TestGenerateUsePartOf(t *testing.T) {
	fs := generatorFs(t)
	cfg := baseConfig()
	cfg.Globals.Export = true
	cfg.Globals.UsePartOf = true
	cfg.Globals.NoComments = true

	require.NoError(t, New(fs, "", nil).Generate(cfg))

	classFile := readOutput(t, fs, "lib/resources/assets.dart")
	assert.Contains(t, classFile, "part of 'resources.dart';")

	library := readOutput(t, fs, "lib/resources/resources.dart")
	assert.Contains(t, library, "part 'assets.dart';")
}

func TestGenerateFontFamilyClass(t *testing.T) {
	fs := generatorFs(t)
	cfg := baseConfig()
	cfg.Globals.NoComments = true
	cfg.Globals.Fonts = config.FontsConfig{Families: map[string]any{
		"Roboto":    map[string]any{"weight": 400},
		"OpenSans":  true,
		"Abril Fat": nil,
	}}

	require.NoError(t, New(fs, "", nil).Generate(cfg))

	content := readOutput(t, fs, "lib/resources/font_family.dart")
	assert.Contains(t, content, "class FontFamily {")
	// Sorted by family name, identifiers synthesized from the names.
	assert.Contains(t, content, "static const String abrilFat = 'Abril Fat';")
	assert.Contains(t, content, "static const String openSans = 'OpenSans';")
	assert.Contains(t, content, "static const String roboto = 'Roboto';")
}

func TestGenerateTestFile(t *testing.T) {
	fs := generatorFs(t)
	cfg := baseConfig()
	cfg.Globals.GenerateTests = true
	cfg.Globals.Export = true

	require.NoError(t, New(fs, "", nil).Generate(cfg))

	content := readOutput(t, fs, "test/assets_test.dart")
	assert.Contains(t, content, "import 'dart:io';")
	assert.Contains(t, content, "import 'package:flutter_test/flutter_test.dart';")
	assert.Contains(t, content, "import 'package:demo/resources/resources.dart';")
	assert.Contains(t, content, "expect(File(Assets.avatar).existsSync(), isTrue);")
	assert.Contains(t, content, "expect(File(Assets.banner).existsSync(), isTrue);")
}

func TestGenerateTestFileImportsClassFilesWithoutExport(t *testing.T) {
	fs := generatorFs(t)
	cfg := baseConfig()
	cfg.Globals.GenerateTests = true

	require.NoError(t, New(fs, "", nil).Generate(cfg))

	content := readOutput(t, fs, "test/assets_test.dart")
	assert.Contains(t, content, "import 'package:demo/resources/assets.dart';")
}

func TestGenerateEmptyGroupIsValid(t *testing.T) {
	fs := generatorFs(t)
	require.NoError(t, fs.MkdirAll("assets/empty", 0o755))
	cfg := baseConfig()
	cfg.Groups = []config.Group{
		{ClassName: "Empty", SubGroups: []config.SubGroup{{Path: "assets/empty"}}},
	}

	require.NoError(t, New(fs, "", nil).Generate(cfg))

	content := readOutput(t, fs, "lib/resources/empty.dart")
	assert.Contains(t, content, "class Empty {")
	assert.Contains(t, content, "Empty._();")
}

func TestGenerateDeterministic(t *testing.T) {
	fixedNow(t)
	cfg := baseConfig()
	cfg.Globals.Export = true
	cfg.Globals.GenerateTests = true
	cfg.Globals.Fonts = config.FontsConfig{Families: map[string]any{"B": true, "A": true, "C": true}}

	render := func() string {
		fs := generatorFs(t)
		require.NoError(t, New(fs, "", nil).Generate(cfg))
		var out string
		for _, f := range []string{
			"lib/resources/assets.dart",
			"lib/resources/font_family.dart",
			"lib/resources/resources.dart",
			"test/assets_test.dart",
		} {
			out += readOutput(t, fs, f)
		}
		return out
	}

	first := render()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, render())
	}
}

func TestGenerateOutputRoot(t *testing.T) {
	fs := generatorFs(t)
	cfg := baseConfig()

	require.NoError(t, New(fs, "build/gen", nil).Generate(cfg))

	exists, err := afero.Exists(fs, "build/gen/lib/resources/assets.dart")
	require.NoError(t, err)
	assert.True(t, exists)
}
