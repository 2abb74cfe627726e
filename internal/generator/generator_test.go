package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/partsbench/parts-table/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.OutputDir = t.TempDir()
	return cfg
}

func writeCSV(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestRunGroup_EndToEnd(t *testing.T) {
	cfg := testConfig(t)
	src := t.TempDir()
	writeCSV(t, src, "caps.csv",
		"DK Part #,Mfr Part #,Mfr,Description,Price, Package\n"+
			"A1,LM358,TI,op-amp,0.55,SMD\n")

	g := New(cfg)
	result := g.RunGroup("op_amps", src)

	if !result.Success {
		t.Fatalf("RunGroup failed: %v", result.Error)
	}
	if result.Stats.RowsLoaded != 1 {
		t.Errorf("RowsLoaded = %d, want 1", result.Stats.RowsLoaded)
	}

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "op_amps.html"))
	if err != nil {
		t.Fatalf("output page not written: %v", err)
	}
	page := string(data)

	if !strings.Contains(page, "Op Amps Table") {
		t.Errorf("page title missing")
	}
	// Price is in the default exclude set.
	if strings.Contains(page, "<th>Price</th>") || strings.Contains(page, "0.55") {
		t.Errorf("excluded Price column leaked into page")
	}
}

func TestRunGroup_ExpansionInPage(t *testing.T) {
	cfg := testConfig(t)
	src := t.TempDir()
	writeCSV(t, src, "caps.csv",
		"DK Part #,Mfr Part #,Mfr,Description, Package\n"+
			"\"A1,A2\",LM358,TI,op-amp,SMD\n")

	result := New(cfg).RunGroup("op_amps", src)
	if !result.Success {
		t.Fatalf("RunGroup failed: %v", result.Error)
	}
	if result.Stats.RowsAfterSplit != 2 {
		t.Fatalf("RowsAfterSplit = %d, want 2", result.Stats.RowsAfterSplit)
	}

	data, _ := os.ReadFile(filepath.Join(cfg.OutputDir, "op_amps.html"))
	page := string(data)

	for _, want := range []string{
		"<td>A1</td>",
		"<td>A2</td>",
		"copyToClipboard('A1, LM358, TI, op-amp, SMD')",
		"copyToClipboard('A2, LM358, TI, op-amp, SMD')",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestRunGroup_EmptyDirectoryStillProducesPage(t *testing.T) {
	cfg := testConfig(t)

	result := New(cfg).RunGroup("empty_group", t.TempDir())
	if !result.Success {
		t.Fatalf("RunGroup failed: %v", result.Error)
	}

	data, err := os.ReadFile(filepath.Join(cfg.OutputDir, "empty_group.html"))
	if err != nil {
		t.Fatalf("output page not written: %v", err)
	}
	if !strings.Contains(string(data), "</html>") {
		t.Errorf("empty-group page is not a complete document")
	}
}

func TestRunGroup_MissingDirectoryFails(t *testing.T) {
	cfg := testConfig(t)

	result := New(cfg).RunGroup("ghost", filepath.Join(t.TempDir(), "ghost"))
	if result.Success || result.Error == nil {
		t.Fatal("expected failure for missing directory")
	}
}

func TestRunFlat_CustomOutputName(t *testing.T) {
	cfg := testConfig(t)
	src := t.TempDir()
	writeCSV(t, src, "parts.csv", "DK Part #,Mfr\nA1,TI\n")

	result := New(cfg).RunFlat("parts", src, "everything.html")
	if !result.Success {
		t.Fatalf("RunFlat failed: %v", result.Error)
	}
	if filepath.Base(result.OutputFile) != "everything.html" {
		t.Errorf("OutputFile = %s, want everything.html", result.OutputFile)
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "everything.html")); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestWriteIndex(t *testing.T) {
	cfg := testConfig(t)

	path, err := New(cfg).WriteIndex([]string{"op_amps", "film_capacitors"})
	if err != nil {
		t.Fatalf("WriteIndex() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("index not written: %v", err)
	}
	page := string(data)
	if !strings.Contains(page, "href=\"op_amps.html\"") ||
		!strings.Contains(page, "Film Capacitors") {
		t.Errorf("index content wrong:\n%s", page)
	}
}
