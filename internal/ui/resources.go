package ui

import (
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"

	"github.com/promaxdigital/casestudy/internal/platform"
)

// AppIcon is the window icon file inside the asset directory
const AppIcon = "logo.png"

// Assets resolves presentation images relative to the asset directory
type Assets struct {
	baseDir string
}

// NewAssets creates a resolver rooted at baseDir
func NewAssets(baseDir string) Assets {
	return Assets{baseDir: baseDir}
}

// Dir returns the asset directory
func (a Assets) Dir() string {
	return a.baseDir
}

// Image returns a canvas image for name, or the broken-image icon when the
// file does not exist
func (a Assets) Image(name string) *canvas.Image {
	var img *canvas.Image
	if path, ok := platform.ResolveAsset(a.baseDir, name); ok {
		img = canvas.NewImageFromFile(path)
	} else {
		img = canvas.NewImageFromResource(theme.BrokenImageIcon())
	}
	img.FillMode = canvas.ImageFillContain
	return img
}

// Missing returns the names that do not resolve to a file
func (a Assets) Missing(names ...string) []string {
	var out []string
	for _, n := range names {
		if _, ok := platform.ResolveAsset(a.baseDir, n); !ok {
			out = append(out, n)
		}
	}
	return out
}
