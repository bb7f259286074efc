package respack

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dsnet/compress/bzip2"

	"github.com/kosmolot/coloredsubs/pkg/respack/errors"
)

// Named dist formats and their compressors.
const (
	distGzip  = "gzip"
	distBzip2 = "bzip2"
)

var distFormats = map[string]string{
	"tar.gz":  distGzip,
	"tgz":     distGzip,
	"tar.bz2": distBzip2,
	"tbz2":    distBzip2,
}

// DistFileName returns the bundle name for a dist format, e.g.
// "ColoredSubtitles-packs.tar.gz".
func DistFileName(format string) (string, error) {
	if _, ok := distFormats[format]; !ok {
		return "", fmt.Errorf("%w: %s", errors.ErrUnsupportedDist, format)
	}
	ext := format
	switch format {
	case "tgz":
		ext = "tar.gz"
	case "tbz2":
		ext = "tar.bz2"
	}
	return "ColoredSubtitles-packs." + ext, nil
}

// BundlePacks writes the given pack archives into a single compressed tar
// bundle. Supported formats: tar.gz/tgz and tar.bz2/tbz2.
func BundlePacks(w io.Writer, format string, packPaths []string) error {
	compressor, ok := distFormats[format]
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrUnsupportedDist, format)
	}

	var cw io.WriteCloser
	switch compressor {
	case distGzip:
		cw = gzip.NewWriter(w)
	case distBzip2:
		bw, err := bzip2.NewWriter(w, &bzip2.WriterConfig{Level: 9})
		if err != nil {
			return fmt.Errorf("creating bzip2 writer: %w", err)
		}
		cw = bw
	}

	tw := tar.NewWriter(cw)
	for _, packPath := range packPaths {
		data, err := os.ReadFile(packPath)
		if err != nil {
			return fmt.Errorf("reading %s: %w", packPath, err)
		}
		header := &tar.Header{
			Name:    filepath.Base(packPath),
			Mode:    0644,
			Size:    int64(len(data)),
			ModTime: time.Now(),
		}
		if err := tw.WriteHeader(header); err != nil {
			return fmt.Errorf("writing tar header for %s: %w", packPath, err)
		}
		if _, err := tw.Write(data); err != nil {
			return fmt.Errorf("writing tar data for %s: %w", packPath, err)
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("closing tar writer: %w", err)
	}
	if err := cw.Close(); err != nil {
		return fmt.Errorf("closing %s writer: %w", compressor, err)
	}
	return nil
}
