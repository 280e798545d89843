// Package assets turns rendered icons into the files that ship with the
// repo: PNGs, the multi-resolution favicon container and the web manifest.
// An Artifact carries a destination path together with the exact bytes that
// belong there, so writing and freshness checking share one code path.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/vaulty-app/brandgen/internal/paths"
)

// Artifact is one generated file.
type Artifact struct {
	Path string
	Data []byte
	// Note is a short description for progress output, e.g. "64×64".
	Note string
}

// Write persists the artifact, creating parent directories and replacing
// any existing file atomically.
func (a Artifact) Write() error {
	if err := paths.AtomicWrite(a.Path, a.Data); err != nil {
		return fmt.Errorf("writing %s: %w", a.Path, err)
	}
	return nil
}

// UpToDate reports whether the file at the artifact's path already holds
// exactly the artifact's bytes. Missing and unreadable files count as
// stale.
func (a Artifact) UpToDate() bool {
	existing, err := os.ReadFile(a.Path)
	if err != nil {
		return false
	}
	return bytes.Equal(existing, a.Data)
}

// Stale returns the artifacts whose on-disk content differs from their
// data.
func Stale(arts []Artifact) []Artifact {
	var stale []Artifact
	for _, a := range arts {
		if !a.UpToDate() {
			stale = append(stale, a)
		}
	}
	return stale
}

// EncodePNG returns img encoded as a PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PNG builds the artifact for img at path.
func PNG(path string, img image.Image) (Artifact, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return Artifact{}, fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}
	b := img.Bounds()
	return Artifact{
		Path: path,
		Data: data,
		Note: fmt.Sprintf("%d×%d", b.Dx(), b.Dy()),
	}, nil
}

// WritePNG encodes img and writes it to path. Shorthand for PNG followed
// by Write.
func WritePNG(path string, img image.Image) error {
	a, err := PNG(path, img)
	if err != nil {
		return err
	}
	return a.Write()
}
