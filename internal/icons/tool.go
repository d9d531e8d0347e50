// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icons

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strconv"
)

// Tool is an external command that resizes images.
type Tool struct {
	// Name is the executable name looked up in PATH.
	Name string
	args func(src, dst string, width, height int) []string
}

// Args returns the command line arguments that resize src into dst.
func (t Tool) Args(src, dst string, width, height int) []string {
	return t.args(src, dst, width, height)
}

// Available tools.
var (
	// Sips is the macOS scriptable image processing system.
	Sips = Tool{
		Name: "sips",
		args: func(src, dst string, width, height int) []string {
			return []string{"-z", strconv.Itoa(height), strconv.Itoa(width), src, "--out", dst}
		},
	}
	// Magick is ImageMagick 7.
	Magick = Tool{
		Name: "magick",
		args: func(src, dst string, width, height int) []string {
			// "!" ignores the aspect ratio, matching sips -z.
			return []string{src, "-resize", strconv.Itoa(width) + "x" + strconv.Itoa(height) + "!", dst}
		},
	}
)

// LookupTool returns the tool with the given name. An empty name selects
// sips on macOS and ImageMagick everywhere else.
func LookupTool(name string) (Tool, error) {
	switch name {
	case "":
		if runtime.GOOS == "darwin" {
			return Sips, nil
		}
		return Magick, nil
	case Sips.Name:
		return Sips, nil
	case Magick.Name:
		return Magick, nil
	}
	return Tool{}, fmt.Errorf("unknown resize tool %q (want %q or %q)", name, Sips.Name, Magick.Name)
}

// Resizer runs a Tool.
type Resizer struct {
	Tool Tool
	// Path, if set, is run instead of looking up Tool.Name.
	Path string
	// Stdout and Stderr receive the tool output. If nil, it is discarded.
	Stdout io.Writer
	Stderr io.Writer
}

func (r *Resizer) bin() string {
	if r.Path != "" {
		return r.Path
	}
	return r.Tool.Name
}

// Check reports whether the tool can be found.
func (r *Resizer) Check() error {
	if _, err := exec.LookPath(r.bin()); err != nil {
		return fmt.Errorf("resize tool %s not found: %w", r.Tool.Name, err)
	}
	return nil
}

// Resize resizes src into dst, overwriting it. It blocks until the tool
// exits.
func (r *Resizer) Resize(ctx context.Context, src, dst string, width, height int) error {
	cmd := exec.CommandContext(ctx, r.bin(), r.Tool.Args(src, dst, width, height)...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to resize %s to %s (%dx%d): %w", src, dst, width, height, err)
	}
	return nil
}
