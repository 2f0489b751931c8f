package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"designkb/internal/domain"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFile_HeaderOrderPreserved(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "widget.csv",
		"Widget Name,Category,Description\n"+
			"ListView,Layout,\"A scrollable, linear list\"\n"+
			"Container,Layout,Painting and sizing\n")

	loader := NewLoader(tmpDir, nil, nil)
	records, err := loader.LoadFile("widget.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	fields := records[0].Fields()
	wantOrder := []string{"Widget Name", "Category", "Description"}
	for i, name := range wantOrder {
		if fields[i].Name != name {
			t.Errorf("field %d = %q, want %q", i, fields[i].Name, name)
		}
	}
	if got := records[0].Get("Description"); got != "A scrollable, linear list" {
		t.Errorf("quoted field = %q", got)
	}
}

func TestLoadFile_ShortRowsPadEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "short.csv", "A,B,C\nx,y\n")

	loader := NewLoader(tmpDir, nil, nil)
	records, err := loader.LoadFile("short.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if v, state := records[0].Lookup("C"); state != domain.FieldEmpty || v != "" {
		t.Errorf("expected empty C field, got %q (state %d)", v, state)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	loader := NewLoader(t.TempDir(), nil, nil)

	records, err := loader.LoadFile("nonexistent.csv")
	if err != nil {
		t.Errorf("missing file should not error, got %v", err)
	}
	if records != nil {
		t.Errorf("expected empty dataset, got %d records", len(records))
	}
}

func TestLoadFile_HeaderOnly(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "empty.csv", "A,B\n")

	loader := NewLoader(tmpDir, nil, nil)
	records, err := loader.LoadFile("empty.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestAvailable_GlobFiltering(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, "widget.csv", "A\n")
	writeFile(t, tmpDir, "colors.csv", "A\n")
	writeFile(t, tmpDir, "notes.txt", "ignored")

	loader := NewLoader(tmpDir, []string{"**/*.csv"}, []string{"**/colors.csv"})
	files, err := loader.Available()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 1 || files[0] != "widget.csv" {
		t.Errorf("expected [widget.csv], got %v", files)
	}
}

func TestAvailable_MissingRoot(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "nope"), nil, nil)

	files, err := loader.Available()
	if err != nil {
		t.Errorf("missing root should not error, got %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %v", files)
	}
}
