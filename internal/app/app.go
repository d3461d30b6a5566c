// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"

	"probegen-core/annotation"
	"probegen-core/genome"
	"probegen/internal/applog"
	"probegen/internal/cli"
	"probegen/internal/config"
	"probegen/internal/pipeline"
	"probegen/internal/version"
	"probegen/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("probegen")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "probegen version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	logger := applog.New(stderr, opts.Verbose)
	defer func() { _ = logger.Sync() }()

	if opts.ConfigFile != "" {
		cf, err := config.Load(opts.ConfigFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		mergeConfig(&opts, cf)
	}
	if opts.Output == "" {
		opts.Output = "fasta"
	}
	if err := cli.Validate(opts); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	statements, err := readStatements(opts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	ref, err := genome.LoadFASTA(opts.GenomeFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	logger.Debug("reference loaded", zap.Int("chromosomes", len(ref)))

	var transcripts []annotation.Transcript
	for _, path := range opts.AnnotationFiles {
		ts, err := annotation.LoadUCSC(path, sourceName(path))
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		transcripts = append(transcripts, ts...)
	}
	idx := annotation.NewIndex(transcripts)
	logger.Debug("annotation indexed",
		zap.Int("transcripts", len(transcripts)),
		zap.Int("genes", idx.Genes()))

	thr := opts.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	inCh, writeErr := writers.StartProbeWriter(outw, opts.Output, opts.Header, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total, failed := 0, 0
	perr := pipeline.Run(ctx, pipeline.Config{Threads: thr}, statements, idx, ref, func(r pipeline.Result) error {
		if r.Err != nil {
			failed++
			logger.Warn("statement failed",
				zap.String("statement", r.Statement),
				zap.Error(r.Err))
			return nil
		}
		logger.Debug("statement resolved",
			zap.String("statement", r.Statement),
			zap.Int("probes", len(r.Probes)))
		for _, p := range r.Probes {
			select {
			case inCh <- p:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		total += len(r.Probes)
		return nil
	})

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, perr)
		return 3
	}

	logger.Debug("run complete", zap.Int("probes", total), zap.Int("failed_statements", failed))
	if total == 0 {
		return opts.NoProbeExitCode
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// mergeConfig fills unset options from the config file; flags win.
func mergeConfig(o *cli.Options, f config.File) {
	if o.GenomeFile == "" {
		o.GenomeFile = f.Genome
	}
	if len(o.AnnotationFiles) == 0 {
		o.AnnotationFiles = f.Annotations
	}
	if o.Output == "" {
		o.Output = f.Output
	}
	if o.Threads == 0 {
		o.Threads = f.Threads
	}
}

// readStatements collects statements from the statement file (if any) and
// then the inline --statement flags, preserving order. Blank lines and
// full-line "--" comments are skipped; trailing comments are handled by the
// parser.
func readStatements(o cli.Options) ([]string, error) {
	var out []string
	if o.StatementFile != "" {
		var r io.Reader = os.Stdin
		if o.StatementFile != "-" {
			fh, err := os.Open(o.StatementFile)
			if err != nil {
				return nil, err
			}
			defer func() { _ = fh.Close() }()
			r = fh
		}
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "--") {
				continue
			}
			out = append(out, line)
		}
		if err := sc.Err(); err != nil {
			return nil, err
		}
	}
	out = append(out, o.Statements...)
	return out, nil
}

// sourceName labels transcripts with the annotation table they came from:
// the base filename with compression and table suffixes stripped, so
// "refGene.txt.gz" becomes "refGene".
func sourceName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, ".gz")
	if ext := filepath.Ext(name); ext != "" && name != ext {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}
