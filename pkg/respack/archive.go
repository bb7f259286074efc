package respack

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileName returns the archive name for this pack, e.g.
// "ColoredSubtitles-1.19.zip".
func (p *Pack) FileName() string {
	return fmt.Sprintf("ColoredSubtitles-%s.zip", p.Version)
}

// WriteZip serializes the pack as a deflate-compressed zip archive.
func (p *Pack) WriteZip(w io.Writer) error {
	zw := zip.NewWriter(w)
	for _, entry := range p.Entries {
		f, err := zw.Create(entry.Path)
		if err != nil {
			return fmt.Errorf("creating zip entry %s: %w", entry.Path, err)
		}
		if _, err := f.Write(entry.Data); err != nil {
			return fmt.Errorf("writing zip entry %s: %w", entry.Path, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing zip: %w", err)
	}
	return nil
}

// WriteFile writes the pack archive into outputDir and returns its path.
// A failed write leaves no usable archive behind.
func (p *Pack) WriteFile(outputDir string) (string, error) {
	outPath := filepath.Join(outputDir, p.FileName())
	out, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", outPath, err)
	}
	if err := p.WriteZip(out); err != nil {
		out.Close()
		os.Remove(outPath)
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", outPath, err)
	}
	return outPath, nil
}
