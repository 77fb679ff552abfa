package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadPrefersFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.json")
	if err := os.WriteFile(path, []byte("  {\"title\": \"Dev\"}\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	doc, err := Load(Source{Name: "job", Value: `{"title": "inline"}`, File: path})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if string(doc.Data) != `{"title": "Dev"}` {
		t.Fatalf("unexpected document %q", doc.Data)
	}
	if doc.Origin != path {
		t.Fatalf("unexpected origin %q", doc.Origin)
	}
}

func TestLoadInline(t *testing.T) {
	doc, err := Load(Source{Name: "candidate", Value: " {\"name\": \"Dana\"} "})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if string(doc.Data) != `{"name": "Dana"}` || doc.Origin != "inline candidate" {
		t.Fatalf("unexpected document %+v", doc)
	}
}

func TestLoadStdin(t *testing.T) {
	previous := Reader
	Reader = strings.NewReader(`[{"name": "A"}]`)
	t.Cleanup(func() { Reader = previous })

	doc, err := Load(Source{Name: "candidates", File: Stdin})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if doc.Origin != "stdin" || string(doc.Data) != `[{"name": "A"}]` {
		t.Fatalf("unexpected document %+v", doc)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, []byte("  \n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	tests := []struct {
		name string
		src  Source
		want string
	}{
		{name: "missing", src: Source{Name: "job"}, want: "job is not provided"},
		{name: "default name", src: Source{}, want: "document is not provided"},
		{name: "empty file", src: Source{Name: "job", File: empty}, want: "is empty"},
		{name: "no such file", src: Source{Name: "job", File: filepath.Join(dir, "nope.json")}, want: "reading job from file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.src)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestExpandAndLoadAll(t *testing.T) {
	dir := t.TempDir()
	for name, body := range map[string]string{
		"b.json":    `{"name": "B"}`,
		"a.json":    `{"name": "A"}`,
		"notes.txt": "ignored",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	single := filepath.Join(t.TempDir(), "c.json")
	if err := os.WriteFile(single, []byte(`{"name": "C"}`), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	files, err := Expand([]string{dir, "", single})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := []string{filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json"), single}
	if strings.Join(files, "|") != strings.Join(want, "|") {
		t.Fatalf("got %v, want %v", files, want)
	}

	docs, err := LoadAll("candidate", []string{dir, single})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(docs) != 3 || string(docs[0].Data) != `{"name": "A"}` {
		t.Fatalf("unexpected documents %+v", docs)
	}

	if _, err := Expand([]string{filepath.Join(dir, "missing")}); err == nil {
		t.Fatal("expected error for missing path")
	}
}
