package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// Asset locations inside the repository, relative to the repo root.
const (
	WebAppDir        = "web/app"
	ExtensionIconDir = "extension/icons"

	FaviconFileName    = "favicon.ico"
	AppleTouchFileName = "apple-touch-icon.png"
	ManifestFileName   = "site.webmanifest"

	DirPerm  = 0755
	FilePerm = 0644
)

// IconName returns the conventional sized-icon file name, e.g. icon-32.png.
// The extension manifest and the web app manifest both reference icons by
// this pattern.
func IconName(size int) string {
	return fmt.Sprintf("icon-%d.png", size)
}

// WebApp returns the path of a web app asset named name under root.
func WebApp(root, name string) string {
	return filepath.Join(root, WebAppDir, name)
}

// ExtensionIcon returns the path of an extension icon named name under
// root.
func ExtensionIcon(root, name string) string {
	return filepath.Join(root, ExtensionIconDir, name)
}

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
