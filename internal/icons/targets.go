// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icons

import (
	"fmt"
	"path/filepath"
)

// Target is a single icon file to produce.
type Target struct {
	Label  string // short name used in logs, e.g. "mipmap-hdpi/ic_launcher.png"
	Path   string
	Width  int
	Height int
}

func (t Target) String() string {
	return fmt.Sprintf("%s (%dx%d)", t.Label, t.Width, t.Height)
}

// Skipped is a manifest entry that was not generated.
type Skipped struct {
	Image ManifestImage
	Err   error
}

// iosTargets returns the targets for every usable image slot in m, and the
// slots skipped because of a malformed size or scale.
func iosTargets(m *Manifest, dir string) (targets []Target, skipped []Skipped) {
	for _, img := range m.Images {
		if img.Filename == "" {
			continue
		}
		w, h, err := img.PixelSize()
		if err != nil {
			skipped = append(skipped, Skipped{Image: img, Err: err})
			continue
		}
		targets = append(targets, Target{
			Label:  img.Filename,
			Path:   filepath.Join(dir, img.Filename),
			Width:  w,
			Height: h,
		})
	}
	return targets, skipped
}

// Density is an Android screen density bucket.
type Density struct {
	Dir  string // resource directory, e.g. "mipmap-hdpi"
	Size int    // launcher icon size in pixels
}

// Densities lists launcher icon sizes for each density bucket.
var Densities = []Density{
	{"mipmap-mdpi", 48},
	{"mipmap-hdpi", 72},
	{"mipmap-xhdpi", 96},
	{"mipmap-xxhdpi", 144},
	{"mipmap-xxxhdpi", 192},
}

// Android launcher icon file names. The round icon is the same square
// image; it is not masked.
const (
	launcherIcon      = "ic_launcher.png"
	launcherRoundIcon = "ic_launcher_round.png"
)

func androidTargets(resDir string) []Target {
	var targets []Target
	for _, d := range Densities {
		for _, name := range []string{launcherIcon, launcherRoundIcon} {
			targets = append(targets, Target{
				Label:  d.Dir + "/" + name,
				Path:   filepath.Join(resDir, d.Dir, name),
				Width:  d.Size,
				Height: d.Size,
			})
		}
	}
	return targets
}
