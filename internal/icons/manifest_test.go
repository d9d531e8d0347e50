// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package icons

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.astrophena.name/base/testutil"
)

func TestPixelSize(t *testing.T) {
	cases := map[string]struct {
		img        ManifestImage
		wantWidth  int
		wantHeight int
		wantErr    error
	}{
		"2x":                {img: ManifestImage{Size: "20x20", Scale: "2x"}, wantWidth: 40, wantHeight: 40},
		"3x":                {img: ManifestImage{Size: "60x60", Scale: "3x"}, wantWidth: 180, wantHeight: 180},
		"fractional points": {img: ManifestImage{Size: "83.5x83.5", Scale: "2x"}, wantWidth: 167, wantHeight: 167},
		"rounds half up":    {img: ManifestImage{Size: "83.5x83.5", Scale: "3x"}, wantWidth: 251, wantHeight: 251},
		"rounds down":       {img: ManifestImage{Size: "16.7x16.7", Scale: "3x"}, wantWidth: 50, wantHeight: 50},
		"not square":        {img: ManifestImage{Size: "120x40", Scale: "2x"}, wantWidth: 240, wantHeight: 80},
		"default scale":     {img: ManifestImage{Size: "1024x1024"}, wantWidth: 1024, wantHeight: 1024},
		"scale without x":   {img: ManifestImage{Size: "20x20", Scale: "2"}, wantWidth: 40, wantHeight: 40},
		"missing size":      {img: ManifestImage{Scale: "2x"}, wantErr: errMalformedSize},
		"non-numeric size":  {img: ManifestImage{Size: "axb", Scale: "2x"}, wantErr: errMalformedSize},
		"one dimension":     {img: ManifestImage{Size: "60", Scale: "2x"}, wantErr: errMalformedSize},
		"zero size":         {img: ManifestImage{Size: "0x0", Scale: "2x"}, wantErr: errMalformedSize},
		"negative size":     {img: ManifestImage{Size: "-20x20", Scale: "2x"}, wantErr: errMalformedSize},
		"non-numeric scale": {img: ManifestImage{Size: "20x20", Scale: "twox"}, wantErr: errMalformedScale},
		"zero scale":        {img: ManifestImage{Size: "20x20", Scale: "0x"}, wantErr: errMalformedScale},
		"infinite scale":    {img: ManifestImage{Size: "20x20", Scale: "Infx"}, wantErr: errMalformedScale},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			w, h, err := tc.img.PixelSize()
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want error %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, w, tc.wantWidth)
			testutil.AssertEqual(t, h, tc.wantHeight)
		})
	}
}

func TestReadManifest(t *testing.T) {
	_, c := setupProject(t)

	m, err := ReadManifest(filepath.Join(c.IOSDir, ManifestName))
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, len(m.Images), 12)
	testutil.AssertEqual(t, m.Images[0], ManifestImage{
		Filename: "Icon-20@2x.png",
		Size:     "20x20",
		Scale:    "2x",
		Idiom:    "iphone",
	})

	bad := filepath.Join(t.TempDir(), ManifestName)
	if err := os.WriteFile(bad, []byte(`{"images": [`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadManifest(bad); err == nil {
		t.Fatal("must fail on invalid JSON")
	}
}

func TestIOSTargets(t *testing.T) {
	m := &Manifest{Images: []ManifestImage{
		{Filename: "a.png", Size: "20x20", Scale: "2x"},
		{Size: "20x20", Scale: "3x"},
		{Filename: "b.png", Size: "??", Scale: "2x"},
		{Filename: "c.png", Size: "40x40", Scale: "1x"},
	}}

	targets, skipped := iosTargets(m, "set")

	testutil.AssertEqual(t, targets, []Target{
		{Label: "a.png", Path: filepath.Join("set", "a.png"), Width: 40, Height: 40},
		{Label: "c.png", Path: filepath.Join("set", "c.png"), Width: 40, Height: 40},
	})
	testutil.AssertEqual(t, len(skipped), 1)
	testutil.AssertEqual(t, skipped[0].Image.Filename, "b.png")
	if !errors.Is(skipped[0].Err, errMalformedSize) {
		t.Fatalf("want errMalformedSize, got %v", skipped[0].Err)
	}
}
