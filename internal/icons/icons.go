// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Package icons regenerates iOS and Android app icons from a single source
image.

# iOS

iOS icons are described by the icon set manifest (Contents.json) in the
AppIcon.appiconset directory. Every image slot that has a filename is
produced at its point size multiplied by its scale, rounded to the nearest
pixel:

	{"filename": "Icon-60@3x.png", "size": "60x60", "scale": "3x"}  ->  180x180

Slots with a malformed size or scale are skipped with a warning.

# Android

Android launcher icons are produced for each of the [Densities] in the
res directory, as both ic_launcher.png and ic_launcher_round.png. The round
icon is a plain square resize of the source; no circular mask is applied.

# Resizing

Images are resized by an external [Tool], one invocation per file, in order.
The first failure stops the run.
*/
package icons

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"go.astrophena.name/base/logger"
)

var errSourceNotFound = errors.New("source image not found")

// Config represents a generation configuration.
type Config struct {
	// Source is the master image. Required.
	Source string
	// IOSDir is the AppIcon.appiconset directory. It contains the manifest and
	// receives the generated images. If empty, it is found with [FindIconSet]
	// relative to the current directory.
	IOSDir string
	// AndroidResDir is the Android res directory. If empty, uses
	// android/app/src/main/res.
	AndroidResDir string
	// SkipIOS and SkipAndroid turn off the respective platform.
	SkipIOS     bool
	SkipAndroid bool
	// DryRun plans targets without running the resize tool or creating
	// directories.
	DryRun bool
	// Resizer runs the resize tool. Required unless DryRun is set.
	Resizer *Resizer
}

// DefaultAndroidResDir is the res directory of a standard Android app module.
var DefaultAndroidResDir = filepath.Join("android", "app", "src", "main", "res")

func (c *Config) setDefaults() error {
	if c.AndroidResDir == "" {
		c.AndroidResDir = DefaultAndroidResDir
	}
	if c.IOSDir == "" && !c.SkipIOS {
		dir, err := FindIconSet(".")
		if err != nil {
			return err
		}
		c.IOSDir = dir
	}
	if c.Resizer == nil && !c.DryRun {
		return errors.New("no resizer configured")
	}
	return nil
}

// Report describes a finished run.
type Report struct {
	// Targets are the files produced, in order. In a dry run they are the
	// files that would have been produced.
	Targets []Target
	// Skipped are manifest entries left out because of a malformed size or
	// scale.
	Skipped []Skipped
}

// Generate produces all icons described by c.
//
// If the source image does not exist, nothing is written. Otherwise targets
// are written one by one, and the first resize failure is returned.
func Generate(ctx context.Context, c *Config) (*Report, error) {
	if _, err := os.Stat(c.Source); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", errSourceNotFound, c.Source)
	} else if err != nil {
		return nil, err
	}
	if err := c.setDefaults(); err != nil {
		return nil, err
	}

	r := new(Report)

	if !c.SkipIOS {
		m, err := ReadManifest(filepath.Join(c.IOSDir, ManifestName))
		if err != nil {
			return nil, err
		}
		targets, skipped := iosTargets(m, c.IOSDir)
		for _, s := range skipped {
			logger.Warn(ctx, "skipping icon with invalid size or scale",
				slog.String("filename", s.Image.Filename),
				slog.String("size", s.Image.Size),
				slog.String("scale", s.Image.Scale),
				slog.Any("err", s.Err),
			)
		}
		r.Targets = append(r.Targets, targets...)
		r.Skipped = skipped
	}
	if !c.SkipAndroid {
		r.Targets = append(r.Targets, androidTargets(c.AndroidResDir)...)
	}

	checkSource(ctx, c.Source, r.Targets)

	if c.DryRun {
		for _, t := range r.Targets {
			logger.Info(ctx, "would generate", slog.String("icon", t.String()), slog.String("path", t.Path))
		}
		return r, nil
	}

	for _, t := range r.Targets {
		if err := os.MkdirAll(filepath.Dir(t.Path), 0o755); err != nil {
			return nil, err
		}
		if err := c.Resizer.Resize(ctx, c.Source, t.Path, t.Width, t.Height); err != nil {
			return nil, err
		}
		logger.Info(ctx, "generated", slog.String("icon", t.String()))
	}

	return r, nil
}

// checkSource warns about source images that will produce poor icons.
func checkSource(ctx context.Context, path string, targets []Target) {
	w, h, err := sourceSize(path)
	if err != nil {
		logger.Warn(ctx, "cannot read source image dimensions", slog.String("path", path), slog.Any("err", err))
		return
	}
	if w != h {
		logger.Warn(ctx, "source image is not square, icons will be distorted",
			slog.Int("width", w), slog.Int("height", h))
	}
	if lw, lh := largest(targets); w < lw || h < lh {
		logger.Warn(ctx, "source image is smaller than the largest icon and will be upscaled",
			slog.String("source", fmt.Sprintf("%dx%d", w, h)),
			slog.String("largest", fmt.Sprintf("%dx%d", lw, lh)),
		)
	}
}

// FindIconSet looks for the single ios/*/Images.xcassets/AppIcon.appiconset
// directory under root.
func FindIconSet(root string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(root, "ios", "*", "Images.xcassets", "AppIcon.appiconset"))
	if err != nil {
		return "", err
	}
	switch len(matches) {
	case 0:
		return "", errors.New("no AppIcon.appiconset found under ios/, pass its directory explicitly")
	case 1:
		return matches[0], nil
	}
	return "", fmt.Errorf("found %d icon sets (%v), pass one explicitly", len(matches), matches)
}
