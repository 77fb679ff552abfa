// Package input reads candidate and job documents from files, inline values
// or standard input.
package input

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Stdin is the file name that reads from standard input.
const Stdin = "-"

// Source describes where a document comes from.
type Source struct {
	// Name is used in error messages to give more context about the document.
	Name string
	// Value is an inline document provided via flags or a request body.
	Value string
	// File points to a file containing the document. When set it takes
	// precedence over Value. "-" reads standard input.
	File string
}

// Document is a loaded document and where it came from.
type Document struct {
	Origin string
	Data   []byte
}

// Reader is used for Stdin. Tests replace it.
var Reader io.Reader = os.Stdin

// Load returns the document described by src. When File is set it takes
// precedence over Value. An error is returned when neither holds any content.
func Load(src Source) (*Document, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "document"
	}

	file := strings.TrimSpace(src.File)
	origin := "inline " + name
	data := []byte(src.Value)

	switch file {
	case "":
	case Stdin:
		read, err := io.ReadAll(Reader)
		if err != nil {
			return nil, fmt.Errorf("reading %s from stdin: %w", name, err)
		}
		data, origin = read, "stdin"
	default:
		read, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		data, origin = read, file
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		if file != "" {
			return nil, fmt.Errorf("%s from %s is empty", name, origin)
		}
		return nil, fmt.Errorf("%s is not provided", name)
	}

	return &Document{Origin: origin, Data: data}, nil
}

// Expand resolves paths to the list of document files they name. A directory
// contributes its *.json files in lexical order; "-" is kept as is.
func Expand(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if p == Stdin {
			out = append(out, p)
			continue
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("checking %q: %w", p, err)
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}

		matches, err := filepath.Glob(filepath.Join(p, "*.json"))
		if err != nil {
			return nil, fmt.Errorf("listing %q: %w", p, err)
		}
		sort.Strings(matches)
		out = append(out, matches...)
	}
	return out, nil
}

// LoadAll loads every file returned by Expand(paths).
func LoadAll(name string, paths []string) ([]*Document, error) {
	files, err := Expand(paths)
	if err != nil {
		return nil, err
	}

	docs := make([]*Document, 0, len(files))
	for _, file := range files {
		doc, err := Load(Source{Name: name, File: file})
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
