// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Update-icons regenerates the iOS and Android app icons from a single source
image.

# Usage

	$ go tool update-icons [flags]

It must be run from the root of the app repository. The iOS icons listed in
the AppIcon.appiconset manifest (Contents.json) are written next to it, and
the Android launcher icons (ic_launcher.png and ic_launcher_round.png) are
written to each mipmap density directory. Existing files are overwritten.

Resizing is done by an external tool: sips on macOS, ImageMagick (the
"magick" command) elsewhere. Use -tool to pick one explicitly. The run stops
at the first failed resize.

With -watch, the icons are regenerated each time the source image changes,
until interrupted.

# Flags

	-C dir
	    Change to dir before doing anything.
	-source path
	    Source image (default "src/assets/icon.png").
	-ios-dir dir
	    AppIcon.appiconset directory. Found under ios/ if not set.
	-android-res dir
	    Android res directory (default "android/app/src/main/res").
	-tool name
	    Resize tool, "sips" or "magick".
	-platform name
	    Generate icons for "all", "ios" or "android" (default "all").
	-dry-run
	    Only print the icons that would be generated.
	-watch
	    Regenerate icons when the source image changes.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/base/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
