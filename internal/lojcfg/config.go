// Package lojcfg holds the on-disk configuration for the CLI's default
// flag values, toml-backed the way the teacher's own config files are
// (internal/tqw reads its scan manifests the same way).
package lojcfg

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config mirrors the subset of the CLI flag surface (spec section 6) a
// user would want as a standing default rather than typing every run:
// trace flags, output format, elision, and the LALR resource limits.
type Config struct {
	Trace struct {
		Words      bool `toml:"words"`
		Compounder bool `toml:"compounder"`
		Reductions bool `toml:"reductions"`
		Parser     bool `toml:"parser"`
		ParserRed  bool `toml:"parser_reductions"`
		Elisions   bool `toml:"elisions"`
	} `toml:"trace"`

	Output struct {
		Tab              bool `toml:"tab"`
		Prolog           bool `toml:"prolog"`
		KeepSingleChild  bool `toml:"keep_single_child"`
		MaxLineWidth     int  `toml:"max_line_width"`
	} `toml:"output"`

	ElideTerminators bool `toml:"elide_terminators"`
	MaxStackDepth    int  `toml:"max_stack_depth"`
	MaxReductionLog  int  `toml:"max_reduction_log"`

	Debug struct {
		LALRInternal bool   `toml:"lalr_internal"`
		GrammarLog   bool   `toml:"grammar_log"`
		GrammarFile  string `toml:"grammar_file"`
	} `toml:"debug"`
}

// Default returns the configuration the reference CLI ships with: no
// traces, elision on, a 200-deep stack, a 100-entry reduction log, and
// "grammar.tmp" for the (disabled by default) grammar error log.
func Default() Config {
	var c Config
	c.ElideTerminators = true
	c.MaxStackDepth = 200
	c.MaxReductionLog = 100
	c.Debug.GrammarFile = "grammar.tmp"
	return c
}

// Load reads a toml config file at path, starting from Default() and
// overwriting only the fields present in the file.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, err
	}
	return c, nil
}
