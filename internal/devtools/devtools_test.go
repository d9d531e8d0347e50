// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package devtools

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureRoot(t *testing.T) {
	dir := t.TempDir()
	if err := EnsureRoot(dir); !errors.Is(err, errNotRoot) {
		t.Fatalf("want errNotRoot, got %v", err)
	}

	// Worktrees and submodules have a .git file instead of a directory.
	if err := os.WriteFile(filepath.Join(dir, ".git"), []byte("gitdir: ../.git/worktrees/app\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := EnsureRoot(dir); err != nil {
		t.Fatal(err)
	}
}
