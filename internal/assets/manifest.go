package assets

import (
	"encoding/json"
	"fmt"

	"github.com/vaulty-app/brandgen/internal/brand"
	"github.com/vaulty-app/brandgen/internal/paths"
)

// WebManifest is the slice of the PWA manifest this tool owns: app
// identity, theme colors and the installable icon entries.
type WebManifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Display         string         `json:"display"`
	ThemeColor      string         `json:"theme_color"`
	BackgroundColor string         `json:"background_color"`
	Icons           []ManifestIcon `json:"icons"`
}

// ManifestIcon is one icon entry of the manifest.
type ManifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
	Type  string `json:"type"`
}

// NewWebManifest returns the Vaulty manifest referencing the generated
// install icons at the given pixel sizes.
func NewWebManifest(iconSizes []int) WebManifest {
	icons := make([]ManifestIcon, 0, len(iconSizes))
	for _, size := range iconSizes {
		icons = append(icons, ManifestIcon{
			Src:   "/" + paths.IconName(size),
			Sizes: fmt.Sprintf("%dx%d", size, size),
			Type:  "image/png",
		})
	}
	return WebManifest{
		Name:            "Vaulty",
		ShortName:       "Vaulty",
		Display:         "standalone",
		ThemeColor:      brand.Hex(brand.Indigo500),
		BackgroundColor: brand.Hex(brand.Slate900),
		Icons:           icons,
	}
}

// Manifest builds the site.webmanifest artifact at path: two-space
// indented JSON with a trailing newline.
func Manifest(path string, m WebManifest) (Artifact, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return Artifact{}, fmt.Errorf("encoding manifest: %w", err)
	}
	return Artifact{
		Path: path,
		Data: append(data, '\n'),
		Note: fmt.Sprintf("%d icons", len(m.Icons)),
	}, nil
}
