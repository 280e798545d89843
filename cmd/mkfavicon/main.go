// mkfavicon renders the Vaulty web icon set into web/app/: the
// multi-resolution favicon.ico, the touch and install PNGs and the web
// manifest that references them.
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

// Favicon container members, smallest first. The largest doubles as the
// base render the others are resampled from.
var containerSizes = []int{16, 32, 48, 64}

// Install icon sizes the web manifest references.
var installSizes = []int{192, 512}

const appleTouchSize = 180

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
			fmt.Printf("mkfavicon %s (built %s)\n", version, buildDate)
			return
		default:
			if strings.HasPrefix(args[i], "-") {
				fmt.Fprintf(os.Stderr, "Error: unknown flag %s\n", args[i])
				fmt.Fprintf(os.Stderr, "Run 'mkfavicon help' for usage.\n")
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
			return fmt.Errorf("%d of %d assets out of date, run mkfavicon to regenerate",
				len(stale), len(arts))
		}
		fmt.Printf("All %d assets up to date.\n", len(arts))
		return nil
	}
	for _, a := range arts {
		if err := a.Write(); err != nil {
			return err
		}
		fmt.Printf("  ✓ %s (%s)\n", a.Path, a.Note)
	}
	fmt.Printf("Done. %d files under %s\n", len(arts), paths.WebApp(root, ""))
	return nil
}

// build renders every web asset in memory. Nothing touches the disk here,
// so the check mode can compare without side effects.
func build(root string) ([]assets.Artifact, error) {
	var arts []assets.Artifact

	base := icon.Render(icon.Favicon, containerSizes[len(containerSizes)-1])
	favicon, err := assets.ICO(paths.WebApp(root, paths.FaviconFileName), base, containerSizes)
	if err != nil {
		return nil, err
	}
	arts = append(arts, favicon)

	touch, err := assets.PNG(paths.WebApp(root, paths.AppleTouchFileName),
		icon.Render(icon.Favicon, appleTouchSize))
	if err != nil {
		return nil, err
	}
	arts = append(arts, touch)

	for _, size := range installSizes {
		a, err := assets.PNG(paths.WebApp(root, paths.IconName(size)),
			icon.Render(icon.Favicon, size))
		if err != nil {
			return nil, err
		}
		arts = append(arts, a)
	}

	manifest, err := assets.Manifest(paths.WebApp(root, paths.ManifestFileName),
		assets.NewWebManifest(installSizes))
	if err != nil {
		return nil, err
	}
	return append(arts, manifest), nil
}

func printUsage() {
	fmt.Printf("mkfavicon %s - Generate the Vaulty web favicon and install icons\n", version)
	fmt.Println(`
Usage:
  mkfavicon [options] [repo-root]

Options:
  --check, -c            Verify assets on disk instead of writing them
  version, -V            Show version and build date
  help, -h, --help       Show this help message

Outputs (under <repo-root>, default "."):
  web/app/favicon.ico            16, 32, 48 and 64 px members
  web/app/apple-touch-icon.png   180 px
  web/app/icon-192.png           192 px
  web/app/icon-512.png           512 px
  web/app/site.webmanifest       references the install icons

With --check nothing is written; the exit status is 1 when any asset is
missing or out of date.`)
}
