// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"probegen/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Statement input
	StatementFile string
	Statements    []string // inline statements, repeatable

	// Reference data
	GenomeFile      string
	AnnotationFiles []string
	ConfigFile      string

	// Performance
	Threads int

	// Output
	Output          string
	Header          bool // true unless --no-header
	NoProbeExitCode int

	Verbose bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: fusion breakpoint probe generation

Resolves probe statements ("GENE#exon[N](+|-)BASES/…") and coordinate
statements ("chr:pos(+|-)BASES/…") against a reference genome and UCSC-style
annotation tables, emitting one FASTA record per unambiguous probe.

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Cross-field validation lives in Validate so config-file defaults can be
// merged in between.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Statement input
	fs.StringVar(&opt.StatementFile, "statements", "", "file of statements, one per line ('-' = stdin) [*]")
	var inline stringSlice
	fs.Var(&inline, "statement", "inline statement (repeatable) [*]")

	// Reference data
	fs.StringVar(&opt.GenomeFile, "genome", "", "reference genome FASTA (.gz ok) [*]")
	var ann stringSlice
	fs.Var(&ann, "annotation", "UCSC/RefSeq annotation table (repeatable, .gz ok)")
	fs.StringVar(&opt.ConfigFile, "config", "", "TOML config file with flag defaults")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")

	// Output
	// Default is left empty so config-file values can fill it; the app
	// falls back to "fasta" after merging.
	fs.StringVar(&opt.Output, "output", "", "output format: fasta | text | json [fasta]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")
	fs.IntVar(&opt.NoProbeExitCode, "no-probe-exit-code", 1, "exit code when zero probes are emitted [1]")

	fs.BoolVar(&opt.Verbose, "verbose", false, "log per-statement resolution detail [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	opt.Statements = inline
	opt.AnnotationFiles = ann
	opt.Header = !noHeader
	return opt, nil
}

// Validate checks cross-field constraints after config-file defaults have
// been merged.
func Validate(opt Options) error {
	if opt.Version {
		return nil
	}
	if opt.GenomeFile == "" {
		return errors.New("--genome is required")
	}
	if opt.StatementFile == "" && len(opt.Statements) == 0 {
		return errors.New("provide --statements or at least one --statement")
	}
	if opt.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if opt.Output != "fasta" && opt.Output != "text" && opt.Output != "json" {
		return fmt.Errorf("invalid --output %q", opt.Output)
	}
	return nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
