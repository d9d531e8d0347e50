// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icons

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// ManifestName is the name of the icon set manifest inside an
// AppIcon.appiconset directory.
const ManifestName = "Contents.json"

// Possible errors, used in tests.
var (
	errMalformedSize  = errors.New("malformed size")
	errMalformedScale = errors.New("malformed scale")
)

// Manifest is an Xcode icon set manifest (Contents.json).
type Manifest struct {
	Images []ManifestImage `json:"images"`
}

// ManifestImage is a single slot of the icon set.
type ManifestImage struct {
	Filename string `json:"filename,omitempty"` // empty for unassigned slots
	Size     string `json:"size,omitempty"`     // point size, e.g. "60x60"
	Scale    string `json:"scale,omitempty"`    // e.g. "3x"; "1x" if empty
	Idiom    string `json:"idiom,omitempty"`
	Platform string `json:"platform,omitempty"`
}

// ReadManifest reads and parses the manifest at path.
func ReadManifest(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m := new(Manifest)
	if err := json.Unmarshal(b, m); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// PixelSize returns the pixel dimensions of the image slot.
func (img ManifestImage) PixelSize() (width, height int, err error) {
	wpt, hpt, err := parseSize(img.Size)
	if err != nil {
		return 0, 0, err
	}
	scale, err := parseScale(img.Scale)
	if err != nil {
		return 0, 0, err
	}
	return toPixels(wpt, scale), toPixels(hpt, scale), nil
}

// parseSize parses a point size like "83.5x83.5".
func parseSize(s string) (w, h float64, err error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", errMalformedSize, s)
	}
	w, werr := strconv.ParseFloat(ws, 64)
	h, herr := strconv.ParseFloat(hs, 64)
	if werr != nil || herr != nil || !positive(w) || !positive(h) {
		return 0, 0, fmt.Errorf("%w: %q", errMalformedSize, s)
	}
	return w, h, nil
}

// parseScale parses a scale factor like "2x". An empty scale means 1x.
func parseScale(s string) (float64, error) {
	if s == "" {
		return 1, nil
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(s, "x"), 64)
	if err != nil || !positive(f) {
		return 0, fmt.Errorf("%w: %q", errMalformedScale, s)
	}
	return f, nil
}

func positive(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && !math.IsNaN(f)
}

func toPixels(pt, scale float64) int {
	return int(math.Round(pt * scale))
}
