package ingestion

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// extractArchive saves the uploaded archive into the workspace, unpacks it
// and returns the path of the shapefile member. The caller owns the
// workspace lifecycle.
func extractArchive(workspace string, archive io.Reader) (string, error) {
	zipPath := filepath.Join(workspace, "upload.zip")
	if err := writeFile(zipPath, archive); err != nil {
		return "", fmt.Errorf("error saving upload: %w", err)
	}
	if err := unzip(zipPath, workspace); err != nil {
		return "", fmt.Errorf("error extracting archive: %w", err)
	}
	return findShapefile(workspace)
}

func writeFile(path string, r io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func unzip(zipPath, dest string) error {
	// Entries are flattened to base names on extraction, so an archive
	// with insecure member paths is still usable.
	zr, err := zip.OpenReader(zipPath)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return err
	}
	defer zr.Close()

	for _, entry := range zr.File {
		if err := extractEntry(entry, dest); err != nil {
			return fmt.Errorf("entry %s: %w", entry.Name, err)
		}
	}
	return nil
}

// extractEntry writes one archive member under its base name. Shapefile
// bundles are flat by convention, and flattening keeps hostile entry paths
// inside the workspace.
func extractEntry(entry *zip.File, dest string) error {
	name := filepath.Base(filepath.Clean(entry.Name))
	if name == "." || name == ".." || name == string(filepath.Separator) || entry.FileInfo().IsDir() {
		return nil
	}
	src, err := entry.Open()
	if err != nil {
		return err
	}
	defer src.Close()
	return writeFile(filepath.Join(dest, name), src)
}

// findShapefile returns the first .shp in the workspace, in lexical order.
func findShapefile(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".shp") {
			return filepath.Join(dir, e.Name()), nil
		}
	}
	return "", ErrNoShapefile
}
