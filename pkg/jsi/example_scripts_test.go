package jsi_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/go-jsi/pkg/jsi"
	"github.com/gkampitakis/go-snaps/snaps"
)

// TestExampleScripts runs the canonical example programs (ESTree JSON, since
// this interpreter embeds no lexer/parser of its own) and snapshots their
// console output, mirroring the teacher's TestExampleScripts
// (pkg/dwscript/example_scripts_test.go) adapted to this package's
// JSON-document entry point and to go-snaps in place of hardcoded
// substring checks, the way the teacher's own
// internal/interp/fixture_test.go uses snaps.MatchSnapshot for output it
// has no separate expected-file for.
func TestExampleScripts(t *testing.T) {
	scriptDir := filepath.Join("testdata", "scripts")
	entries, err := os.ReadDir(scriptDir)
	if err != nil {
		t.Fatalf("failed to read %s: %v", scriptDir, err)
	}

	for _, entry := range entries {
		entry := entry
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		name := entry.Name()[:len(entry.Name())-len(filepath.Ext(entry.Name()))]

		t.Run(name, func(t *testing.T) {
			doc, err := os.ReadFile(filepath.Join(scriptDir, entry.Name()))
			if err != nil {
				t.Fatalf("failed to read %s: %v", entry.Name(), err)
			}

			engine := jsi.New()
			result, err := engine.EvalJSON(string(doc))
			if err != nil {
				t.Fatalf("evaluation error for %s: %v", entry.Name(), err)
			}

			snaps.MatchSnapshot(t, result.Output)
		})
	}
}
