// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"go.astrophena.name/appicons/internal/devtools"
	"go.astrophena.name/appicons/internal/icons"
	"go.astrophena.name/appicons/internal/watch"
	"go.astrophena.name/base/cli"
	"go.astrophena.name/base/logger"
)

func main() { cli.Main(new(app)) }

type app struct {
	dir        string
	source     string
	iosDir     string
	androidRes string
	tool       string
	platform   string
	dryRun     bool
	watch      bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.dir, "C", "", "Change to `dir` before doing anything.")
	fs.StringVar(&a.source, "source", filepath.Join("src", "assets", "icon.png"), "Source image `path`.")
	fs.StringVar(&a.iosDir, "ios-dir", "", "AppIcon.appiconset `dir`. Found under ios/ if not set.")
	fs.StringVar(&a.androidRes, "android-res", icons.DefaultAndroidResDir, "Android res `dir`.")
	fs.StringVar(&a.tool, "tool", "", "Resize tool, sips or magick. Defaults to sips on macOS and magick elsewhere.")
	fs.StringVar(&a.platform, "platform", "all", "Generate icons for all, ios or android.")
	fs.BoolVar(&a.dryRun, "dry-run", false, "Only print the icons that would be generated.")
	fs.BoolVar(&a.watch, "watch", false, "Regenerate icons when the source image changes.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	if len(env.Args) > 0 {
		return fmt.Errorf("%w: unexpected arguments %q", cli.ErrInvalidArgs, env.Args)
	}

	if a.dir != "" {
		if err := os.Chdir(a.dir); err != nil {
			return err
		}
	}
	if err := devtools.EnsureRoot(""); err != nil {
		return err
	}

	c, err := a.config()
	if err != nil {
		return err
	}
	if !c.DryRun {
		if err := c.Resizer.Check(); err != nil {
			return err
		}
	}

	if err := generate(ctx, c); err != nil {
		return err
	}
	if !a.watch {
		return nil
	}

	return watch.File(ctx, c.Source, func() {
		if err := generate(ctx, c); err != nil {
			logger.Error(ctx, "failed to regenerate icons", slog.Any("err", err))
		}
	})
}

func (a *app) config() (*icons.Config, error) {
	c := &icons.Config{
		Source:        a.source,
		IOSDir:        a.iosDir,
		AndroidResDir: a.androidRes,
		DryRun:        a.dryRun,
	}

	switch a.platform {
	case "all":
	case "ios":
		c.SkipAndroid = true
	case "android":
		c.SkipIOS = true
	default:
		return nil, fmt.Errorf("%w: unknown platform %q (want all, ios or android)", cli.ErrInvalidArgs, a.platform)
	}

	tool, err := icons.LookupTool(a.tool)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cli.ErrInvalidArgs, err)
	}
	c.Resizer = &icons.Resizer{
		Tool:   tool,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	return c, nil
}

func generate(ctx context.Context, c *icons.Config) error {
	r, err := icons.Generate(ctx, c)
	if err != nil {
		return err
	}
	logger.Info(ctx, "done",
		slog.Int("icons", len(r.Targets)),
		slog.Int("skipped", len(r.Skipped)),
	)
	return nil
}
