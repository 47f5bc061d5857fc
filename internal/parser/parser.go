package parser

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// SourceFile is the parsed representation of one Rust source file handed to
// the analysis engine.
type SourceFile struct {
	Path  string
	Lines []string
	Items []Item

	source string
}

// Item is a top-level declaration or attribute spotted in a source file.
type Item struct {
	Kind string `json:"kind"` // fn | struct | mod | attribute | macro
	Name string `json:"name"`
	Line int    `json:"line"` // 1-based
}

var (
	reFn        = regexp.MustCompile(`^\s*(?:pub(?:\([^)]*\))?\s+)?fn\s+(\w+)`)
	reStruct    = regexp.MustCompile(`^\s*(?:pub(?:\([^)]*\))?\s+)?struct\s+(\w+)`)
	reMod       = regexp.MustCompile(`^\s*(?:pub\s+)?mod\s+(\w+)`)
	reAttribute = regexp.MustCompile(`^\s*#\[([\w:]+)`)
	reMacro     = regexp.MustCompile(`^\s*(\w+)!\s*[({]`)
)

// Source returns the full file content.
func (f *SourceFile) Source() string { return f.source }

// Parse builds a SourceFile from raw content.
func Parse(path, content string) *SourceFile {
	sf := &SourceFile{Path: filepath.ToSlash(path), source: content}
	sf.Lines = strings.Split(content, "\n")
	for i, line := range sf.Lines {
		switch {
		case reFn.MatchString(line):
			sf.Items = append(sf.Items, Item{Kind: "fn", Name: reFn.FindStringSubmatch(line)[1], Line: i + 1})
		case reStruct.MatchString(line):
			sf.Items = append(sf.Items, Item{Kind: "struct", Name: reStruct.FindStringSubmatch(line)[1], Line: i + 1})
		case reMod.MatchString(line):
			sf.Items = append(sf.Items, Item{Kind: "mod", Name: reMod.FindStringSubmatch(line)[1], Line: i + 1})
		case reAttribute.MatchString(line):
			sf.Items = append(sf.Items, Item{Kind: "attribute", Name: reAttribute.FindStringSubmatch(line)[1], Line: i + 1})
		case reMacro.MatchString(line):
			sf.Items = append(sf.Items, Item{Kind: "macro", Name: reMacro.FindStringSubmatch(line)[1], Line: i + 1})
		}
	}
	return sf
}

// ProcessDirectory walks root and parses every eligible Rust source file.
// Build output and hidden directories are skipped. An empty tree yields an
// empty slice, not an error.
func ProcessDirectory(root string) ([]*SourceFile, error) {
	var out []*SourceFile
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if name == "target" || name == "node_modules" || (strings.HasPrefix(name, ".") && path != root) {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(d.Name()) != ".rs" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		out = append(out, Parse(path, string(data)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type astDump struct {
	Path      string `json:"path"`
	LineCount int    `json:"lineCount"`
	Items     []Item `json:"items"`
}

// ASTJSON serializes the parsed representation for --ast dumps.
func (f *SourceFile) ASTJSON() ([]byte, error) {
	return json.MarshalIndent(astDump{Path: f.Path, LineCount: len(f.Lines), Items: f.Items}, "", "  ")
}

// ASTPath returns the dump location written beside the source file.
func ASTPath(srcPath string) string {
	ext := filepath.Ext(srcPath)
	return strings.TrimSuffix(srcPath, ext) + ".ast.json"
}
