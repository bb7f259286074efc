package respack

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestPackWriteZip(t *testing.T) {
	pack := &Pack{
		Version: "1.12",
		Format:  3,
		Entries: []PackEntry{
			{Path: "pack.mcmeta", Data: []byte(`{"pack":{"pack_format":3,"description":"By Kosmolot"}}`)},
			{Path: "assets/minecraft/lang/en_us.lang", Data: []byte("gui.done=Done\n")},
		},
	}

	var buf bytes.Buffer
	if err := pack.WriteZip(&buf); err != nil {
		t.Fatalf("WriteZip: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("reading archive back: %v", err)
	}
	if len(zr.File) != len(pack.Entries) {
		t.Fatalf("archive has %d entries, want %d", len(zr.File), len(pack.Entries))
	}
	for i, entry := range pack.Entries {
		file := zr.File[i]
		if file.Name != entry.Path {
			t.Errorf("entry %d name = %q, want %q", i, file.Name, entry.Path)
		}
		rc, err := file.Open()
		if err != nil {
			t.Fatalf("opening %s: %v", file.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("reading %s: %v", file.Name, err)
		}
		if !bytes.Equal(data, entry.Data) {
			t.Errorf("entry %s content = %q, want %q", file.Name, data, entry.Data)
		}
	}
}

func TestPackWriteFile(t *testing.T) {
	pack := &Pack{
		Version: "1.19",
		Format:  9,
		Entries: []PackEntry{{Path: "pack.mcmeta", Data: []byte("{}")}},
	}

	dir := t.TempDir()
	outPath, err := pack.WriteFile(dir)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if want := filepath.Join(dir, "ColoredSubtitles-1.19.zip"); outPath != want {
		t.Errorf("path = %q, want %q", outPath, want)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("stat output: %v", err)
	}
	zr, err := zip.OpenReader(outPath)
	if err != nil {
		t.Fatalf("output is not a readable zip: %v", err)
	}
	zr.Close()
}
