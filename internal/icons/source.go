// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icons

import (
	"image"
	"os"

	// Register formats the resize tools commonly accept.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// sourceSize reads the dimensions of the image at path from its header.
func sourceSize(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}

// largest returns the largest width and height among targets.
func largest(targets []Target) (width, height int) {
	for _, t := range targets {
		width = max(width, t.Width)
		height = max(height, t.Height)
	}
	return width, height
}
