// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package devtools contains common functionality for development tools.
package devtools

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.astrophena.name/base/unwrap"
)

var errNotRoot = errors.New("not at repository root")

// EnsureRoot checks that dir is a repository root, that is, it contains a .git
// entry. An empty dir means the current working directory.
func EnsureRoot(dir string) error {
	if dir == "" {
		dir = unwrap.Value(os.Getwd())
	}
	if _, err := os.Stat(filepath.Join(dir, ".git")); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s (are you at repo root?)", errNotRoot, dir)
	} else if err != nil {
		return err
	}
	return nil
}
