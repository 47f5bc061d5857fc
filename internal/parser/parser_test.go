package parser

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleProgram = `use anchor_lang::prelude::*;

declare_id!("Fg6PaFpoGXkYsidMpWTK6W2BeZ7FEfcYkg476zPFsLnS");

#[program]
pub mod vault {
    use super::*;

    pub fn initialize(ctx: Context<Initialize>) -> Result<()> {
        Ok(())
    }
}

#[derive(Accounts)]
pub struct Initialize<'info> {
    pub authority: Signer<'info>,
}
`

func TestParseItems(t *testing.T) {
	sf := Parse("programs/vault/src/lib.rs", sampleProgram)

	kinds := map[string]int{}
	for _, it := range sf.Items {
		kinds[it.Kind]++
	}
	if kinds["fn"] != 1 {
		t.Errorf("expected 1 fn, got %d", kinds["fn"])
	}
	if kinds["struct"] != 1 {
		t.Errorf("expected 1 struct, got %d", kinds["struct"])
	}
	if kinds["attribute"] != 2 {
		t.Errorf("expected 2 attributes, got %d", kinds["attribute"])
	}
	if kinds["macro"] != 1 {
		t.Errorf("expected 1 macro, got %d", kinds["macro"])
	}

	for _, it := range sf.Items {
		if it.Kind == "fn" && (it.Name != "initialize" || it.Line != 9) {
			t.Errorf("fn item = %+v", it)
		}
	}
}

func TestProcessDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "src")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "lib.rs"), []byte(sampleProgram), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("docs"), 0o644); err != nil {
		t.Fatal(err)
	}
	// build output must be skipped
	tgt := filepath.Join(dir, "target", "debug")
	if err := os.MkdirAll(tgt, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tgt, "generated.rs"), []byte("fn x() {}"), 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := ProcessDirectory(dir)
	if err != nil {
		t.Fatalf("ProcessDirectory() error = %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 source file, got %d", len(files))
	}
	if !strings.HasSuffix(files[0].Path, "lib.rs") {
		t.Errorf("unexpected path %q", files[0].Path)
	}
}

func TestProcessDirectoryEmpty(t *testing.T) {
	files, err := ProcessDirectory(t.TempDir())
	if err != nil {
		t.Fatalf("ProcessDirectory() error = %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected no files, got %d", len(files))
	}
}

func TestASTJSON(t *testing.T) {
	sf := Parse("lib.rs", sampleProgram)
	data, err := sf.ASTJSON()
	if err != nil {
		t.Fatalf("ASTJSON() error = %v", err)
	}
	var decoded struct {
		Path      string `json:"path"`
		LineCount int    `json:"lineCount"`
		Items     []Item `json:"items"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("dump is not valid JSON: %v", err)
	}
	if decoded.Path != "lib.rs" || decoded.LineCount == 0 || len(decoded.Items) == 0 {
		t.Errorf("unexpected dump: %+v", decoded)
	}
}

func TestASTPath(t *testing.T) {
	if got := ASTPath("src/lib.rs"); got != "src/lib.ast.json" {
		t.Errorf("ASTPath() = %q", got)
	}
}
