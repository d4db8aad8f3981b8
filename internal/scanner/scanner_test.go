package scanner

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spiderkit/spider/internal/config"
)

func TestNormalizeExtension(t *testing.T) {
	tests := []struct {
		token    string
		expected string
	}{
		{"png", ".png"},
		{".png", ".png"},
		{"PNG", ".png"},
		{".JPG", ".jpg"},
		{" svg ", ".svg"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeExtension(tt.token))
		})
	}
}

func TestNormalizeExtensionIdempotent(t *testing.T) {
	for _, token := range []string{"png", ".png", "JPEG", "", ".tar.gz", "webp "} {
		once := NormalizeExtension(token)
		assert.Equal(t, once, NormalizeExtension(once), "token %q", token)
	}
}

func scanFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	files := []string{
		"assets/images/avatar.png",
		"assets/images/banner.JPG",
		"assets/images/readme.md",
		"assets/images/.hidden.png",
		"assets/icons/home.svg",
		"assets/images/nested/deep.png",
	}
	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, f, []byte{1}, 0o644))
	}
	return fs
}

func TestScanFiltersAndOrders(t *testing.T) {
	assets, err := Scan(scanFs(t), []config.SubGroup{{Path: "assets/images"}})
	require.NoError(t, err)

	// Extension filter is case-insensitive, dot-files and subdirectories
	// are skipped, order is lexicographic.
	require.Len(t, assets, 2)
	assert.Equal(t, Asset{Path: "assets/images/avatar.png", Name: "avatar"}, assets[0])
	assert.Equal(t, Asset{Path: "assets/images/banner.JPG", Name: "banner"}, assets[1])
}

func TestScanDeclaredTypes(t *testing.T) {
	assets, err := Scan(scanFs(t), []config.SubGroup{
		{Path: "assets/images", Types: []string{"JPG"}},
	})
	require.NoError(t, err)

	require.Len(t, assets, 1)
	assert.Equal(t, "banner", assets[0].Name)
}

func TestScanConcatenatesSubGroupsInOrder(t *testing.T) {
	assets, err := Scan(scanFs(t), []config.SubGroup{
		{Path: "assets/icons"},
		{Path: "assets/images"},
	})
	require.NoError(t, err)

	require.Len(t, assets, 3)
	assert.Equal(t, "assets/icons/home.svg", assets[0].Path)
	assert.Equal(t, "assets/images/avatar.png", assets[1].Path)
	assert.Equal(t, "assets/images/banner.JPG", assets[2].Path)
}

func TestScanEmptyDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("assets/empty", 0o755))

	assets, err := Scan(fs, []config.SubGroup{{Path: "assets/empty"}})
	require.NoError(t, err)
	assert.Empty(t, assets)
}

func TestScanMissingDirectory(t *testing.T) {
	_, err := Scan(afero.NewMemMapFs(), []config.SubGroup{{Path: "gone"}})
	assert.Error(t, err)
}
