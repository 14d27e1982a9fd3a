package cmd

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config is the optional `--config` file's shape, the teacher's
// equivalent of a compiler-directive file (SPEC_FULL.md §2.3). Prelude is
// an ESTree JSON program run once, before the REPL's first prompt, in the
// same Engine and therefore the same global scope — the usual way to seed
// a REPL session with helper functions. A host-function allowlist
// (named alongside Prelude in SPEC_FULL.md §3) has no meaning for this
// bare reference CLI, which never registers arbitrary Go functions as
// host bindings in the first place; that knob belongs to an embedder
// using pkg/jsi.BindHostFunc directly; only Prelude is loaded here.
type Config struct {
	Prelude string `yaml:"prelude"`
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
