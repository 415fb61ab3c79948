package icons

import (
	"fmt"
	"os"
	"path/filepath"

	"gocv.io/x/gocv"
)

// Artifact is one file produced by WriteAll.
type Artifact struct {
	Path   string
	Width  int
	Height int
	Bytes  int
}

// WriteAll renders every icon into dir/icons and the installer bitmaps
// into dir/installer.
func WriteAll(dir string) ([]Artifact, error) {
	iconDir := filepath.Join(dir, "icons")
	installerDir := filepath.Join(dir, "installer")
	for _, d := range []string{iconDir, installerDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", d, err)
		}
	}

	var out []Artifact
	write := func(path string, w, h int, data []byte) error {
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		out = append(out, Artifact{Path: path, Width: w, Height: h, Bytes: len(data)})
		return nil
	}

	for _, g := range glyphs {
		data, err := IconPNG(g.Name, IconSize)
		if err != nil {
			return out, err
		}
		if err := write(filepath.Join(iconDir, g.Name+".png"), IconSize, IconSize, data); err != nil {
			return out, err
		}
		if g.Name != "office" {
			continue
		}
		ico, err := WrapICO(data, IconSize)
		if err != nil {
			return out, err
		}
		if err := write(filepath.Join(iconDir, "office.ico"), IconSize, IconSize, ico); err != nil {
			return out, err
		}
	}

	sidebar, err := SidebarImage(gocv.BMPFileExt)
	if err != nil {
		return out, err
	}
	if err := write(filepath.Join(installerDir, "sidebar.bmp"), SidebarWidth, SidebarHeight, sidebar); err != nil {
		return out, err
	}

	header, err := HeaderImage(gocv.BMPFileExt)
	if err != nil {
		return out, err
	}
	if err := write(filepath.Join(installerDir, "header.bmp"), HeaderWidth, HeaderHeight, header); err != nil {
		return out, err
	}
	return out, nil
}
