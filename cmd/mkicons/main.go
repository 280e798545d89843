// mkicons renders the Vaulty browser-extension toolbar icons into
// extension/icons/ at every size the extension manifest declares.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/vaulty-app/brandgen/internal/assets"
	"github.com/vaulty-app/brandgen/internal/icon"
	"github.com/vaulty-app/brandgen/internal/paths"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// Sizes Chrome and Firefox read from manifest.json: toolbar, extension
// management page and the web store listing.
var iconSizes = []int{16, 32, 48, 128}

func main() {
	check := false
	root := "."

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--check", "-c":
			check = true
		case "help", "-h", "--help":
			printUsage()
			return
		case "version", "-V", "--version":
			fmt.Printf("mkicons %s (built %s)\n", version, buildDate)
			return
		default:
			if strings.HasPrefix(args[i], "-") {
				fmt.Fprintf(os.Stderr, "Error: unknown flag %s\n", args[i])
				fmt.Fprintf(os.Stderr, "Run 'mkicons help' for usage.\n")
				os.Exit(1)
			}
			root = args[i]
		}
	}

	if err := run(root, check); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(root string, check bool) error {
	arts, err := build(root)
	if err != nil {
		return err
	}
	if check {
		stale := assets.Stale(arts)
		for _, a := range stale {
			fmt.Printf("  stale: %s\n", a.Path)
		}
		if len(stale) > 0 {
			return fmt.Errorf("%d of %d icons out of date, run mkicons to regenerate",
				len(stale), len(arts))
		}
		fmt.Printf("All %d icons up to date.\n", len(arts))
		return nil
	}
	for _, a := range arts {
		if err := a.Write(); err != nil {
			return err
		}
		fmt.Printf("  ✓ %s (%s)\n", a.Path, a.Note)
	}
	fmt.Printf("Done. %d icons under %s\n", len(arts), paths.ExtensionIcon(root, ""))
	return nil
}

// build renders every toolbar icon in memory; each size runs the full
// supersampled pipeline rather than resampling a shared base, which keeps
// stroke edges crisp at 16px.
func build(root string) ([]assets.Artifact, error) {
	arts := make([]assets.Artifact, 0, len(iconSizes))
	for _, size := range iconSizes {
		a, err := assets.PNG(paths.ExtensionIcon(root, paths.IconName(size)),
			icon.Render(icon.Extension, size))
		if err != nil {
			return nil, err
		}
		arts = append(arts, a)
	}
	return arts, nil
}

func printUsage() {
	fmt.Printf("mkicons %s - Generate the Vaulty browser-extension icons\n", version)
	fmt.Println(`
Usage:
  mkicons [options] [repo-root]

Options:
  --check, -c            Verify icons on disk instead of writing them
  version, -V            Show version and build date
  help, -h, --help       Show this help message

Outputs (under <repo-root>, default "."):
  extension/icons/icon-16.png
  extension/icons/icon-32.png
  extension/icons/icon-48.png
  extension/icons/icon-128.png

With --check nothing is written; the exit status is 1 when any icon is
missing or out of date.`)
}
