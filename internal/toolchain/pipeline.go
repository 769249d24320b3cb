// Package toolchain orchestrates the transpile pipeline: file discovery,
// vocabulary validation, alias rewriting, caching and the external
// TypeScript compiler.
package toolchain

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nullscript-lang/nullscript/internal/diag"
	"github.com/nullscript-lang/nullscript/internal/keywords"
	"github.com/nullscript-lang/nullscript/internal/project"
	"github.com/nullscript-lang/nullscript/internal/rewrite"
	"github.com/nullscript-lang/nullscript/internal/source"
)

// Options configures a Pipeline.
type Options struct {
	// Jobs caps rewrite parallelism; zero means one worker per CPU.
	Jobs int
	// Target selects the build output: rewritten TypeScript or compiled
	// JavaScript.
	Target project.Target
	// SkipTypeCheck passes --noCheck to the TypeScript compiler.
	SkipTypeCheck bool
	// Cache holds rewritten output between builds. Nil disables caching.
	Cache *DiskCache
	// Progress receives per-file stage events. Nil disables reporting.
	Progress ProgressSink
	// MaxDiagnostics caps collected diagnostics per file.
	MaxDiagnostics int
}

// Pipeline transpiles NullScript sources. Safe for concurrent use.
type Pipeline struct {
	table     *keywords.Table
	engine    *rewrite.Engine
	validator *rewrite.Validator
	opts      Options
}

// NewPipeline builds a pipeline over the given keyword table.
func NewPipeline(table *keywords.Table, opts Options) *Pipeline {
	if opts.Jobs < 1 {
		opts.Jobs = runtime.NumCPU()
	}
	if opts.Target == "" {
		opts.Target = project.TargetTS
	}
	if opts.MaxDiagnostics < 1 {
		opts.MaxDiagnostics = 64
	}
	return &Pipeline{
		table:     table,
		engine:    rewrite.NewEngine(table),
		validator: rewrite.NewValidator(table),
		opts:      opts,
	}
}

// TranspileSource validates and rewrites in-memory source, for stdin input
// and editor integrations. No caching, no output files.
func (p *Pipeline) TranspileSource(src, path string) (string, error) {
	if err := p.validator.ValidateSource(src, path); err != nil {
		return "", err
	}
	return p.engine.Rewrite(src), nil
}

// FileResult captures the outcome for one source file.
type FileResult struct {
	NSPath  string
	TSPath  string
	JSPath  string
	Cached  bool
	Bag     *diag.Bag
	Timings Timings
	Err     *diag.TranspileError
}

// Result aggregates a whole build.
type Result struct {
	Files   []FileResult
	Elapsed time.Duration
}

// Failed returns the results that ended in an error, in input order.
func (r *Result) Failed() []FileResult {
	var out []FileResult
	for _, f := range r.Files {
		if f.Err != nil {
			out = append(out, f)
		}
	}
	return out
}

// CacheHits counts files served from the disk cache.
func (r *Result) CacheHits() int {
	n := 0
	for _, f := range r.Files {
		if f.Cached {
			n++
		}
	}
	return n
}

// Diagnostics merges every per-file bag into one, in input order.
func (r *Result) Diagnostics() *diag.Bag {
	merged := diag.NewBag(len(r.Files) * 8)
	for _, f := range r.Files {
		merged.Merge(f.Bag)
	}
	return merged
}

// Build transpiles every .ns file under srcDir into outDir in parallel.
// The error return covers setup failures only; per-file failures land in
// the result so one broken file never hides the rest of the build.
func (p *Pipeline) Build(ctx context.Context, srcDir, outDir string) (*Result, error) {
	files, err := ListNSFiles(srcDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list sources in %s: %w", srcDir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files found in %s", SourceExt, srcDir)
	}

	start := time.Now()
	emitQueued(p.opts.Progress, files)

	results := make([]FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(p.opts.Jobs, len(files)))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			results[i] = p.buildFile(gctx, srcDir, outDir, path)
			if results[i].Err != nil {
				// Keep going: remaining files still get processed.
				return nil
			}
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Result{Files: results, Elapsed: time.Since(start)}, nil
}

// buildFile runs one file through validate, rewrite and (for the js
// target) the external compiler. All failures are recorded on the result.
func (p *Pipeline) buildFile(ctx context.Context, srcDir, outDir, nsPath string) FileResult {
	res := FileResult{
		NSPath: nsPath,
		Bag:    diag.NewBag(p.opts.MaxDiagnostics),
	}

	tsOut, err := p.rewriteFile(nsPath, &res)
	if err != nil {
		res.Err = err
		emitFile(p.opts.Progress, nsPath, StageValidate, StatusError, err, 0)
		return res
	}
	emitFile(p.opts.Progress, nsPath, StageRewrite, StatusDone, nil, 0)

	tsPath, err2 := OutputPath(srcDir, outDir, nsPath, ".ts")
	if err2 != nil {
		res.Err = p.recordIOError(&res, diag.IOWriteFileError, nsPath, err2)
		return res
	}
	if err2 := writeOutput(tsPath, tsOut); err2 != nil {
		res.Err = p.recordIOError(&res, diag.IOWriteFileError, nsPath, err2)
		emitFile(p.opts.Progress, nsPath, StageEmit, StatusError, res.Err, 0)
		return res
	}
	res.TSPath = tsPath

	if p.opts.Target != project.TargetJS {
		return res
	}

	emitFile(p.opts.Progress, nsPath, StageEmit, StatusWorking, nil, 0)
	jsPath, err2 := OutputPath(srcDir, outDir, nsPath, ".js")
	if err2 != nil {
		res.Err = p.recordIOError(&res, diag.IOWriteFileError, nsPath, err2)
		return res
	}
	t0 := time.Now()
	err2 = EmitJS(ctx, nsPath, tsOut, jsPath, p.opts.SkipTypeCheck)
	res.Timings.Set(StageEmit, time.Since(t0))
	if err2 != nil {
		terr := asTranspileError(err2)
		res.Err = terr
		res.Bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     tscCode(terr.Kind),
			Message:  fmt.Sprintf("%s: %s", nsPath, terr.Message),
		})
		emitFile(p.opts.Progress, nsPath, StageEmit, StatusError, terr, time.Since(t0))
		return res
	}
	res.JSPath = jsPath
	emitFile(p.opts.Progress, nsPath, StageEmit, StatusDone, nil, time.Since(t0))
	return res
}

// rewriteFile loads, validates and rewrites one file, consulting the disk
// cache first. Only validated output is ever cached, so a hit skips both
// stages.
func (p *Pipeline) rewriteFile(nsPath string, res *FileResult) ([]byte, *diag.TranspileError) {
	emitFile(p.opts.Progress, nsPath, StageValidate, StatusWorking, nil, 0)

	fs := source.NewFileSet()
	id, err := fs.Load(nsPath)
	if err != nil {
		return nil, p.recordIOError(res, diag.IOLoadFileError, nsPath, err)
	}
	f := fs.Get(id)

	key := CacheKey(f.Content, p.table.Fingerprint())
	var payload CachePayload
	if hit, err := p.opts.Cache.Get(key, &payload); err == nil && hit {
		res.Cached = true
		emitFile(p.opts.Progress, nsPath, StageValidate, StatusDone, nil, 0)
		return payload.Output, nil
	}

	t0 := time.Now()
	ok := p.validator.Validate(f, diag.BagReporter{Bag: res.Bag})
	res.Timings.Set(StageValidate, time.Since(t0))
	if !ok {
		terr := violationError(fs, res.Bag, nsPath)
		return nil, terr
	}
	emitFile(p.opts.Progress, nsPath, StageValidate, StatusDone, nil, res.Timings.Duration(StageValidate))

	emitFile(p.opts.Progress, nsPath, StageRewrite, StatusWorking, nil, 0)
	t0 = time.Now()
	out := []byte(p.engine.Rewrite(string(f.Content)))
	res.Timings.Set(StageRewrite, time.Since(t0))

	// Cache write failures are not build failures.
	_ = p.opts.Cache.Put(key, &CachePayload{Source: nsPath, Output: out})
	return out, nil
}

// violationError exposes the first validation diagnostic as the file error.
func violationError(fs *source.FileSet, bag *diag.Bag, nsPath string) *diag.TranspileError {
	bag.Sort()
	d := bag.Items()[0]
	pos, _ := fs.Resolve(d.Primary)
	terr := diag.NewTranspileError(diag.KindSyntax, d.Message).
		WithLocation(nsPath, int(pos.Line), int(pos.Col))
	if len(d.Notes) > 0 {
		terr = terr.WithHint(d.Notes[0].Msg)
	}
	return terr
}

func (p *Pipeline) recordIOError(res *FileResult, code diag.Code, nsPath string, err error) *diag.TranspileError {
	res.Bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  fmt.Sprintf("%s: %v", nsPath, err),
	})
	return diag.NewTranspileError(diag.KindGeneric, err.Error()).WithLocation(nsPath, 0, 0)
}

func tscCode(kind diag.ErrorKind) diag.Code {
	switch kind {
	case diag.KindSyntax:
		return diag.TscSyntax
	case diag.KindType:
		return diag.TscType
	default:
		return diag.TscGeneric
	}
}

func asTranspileError(err error) *diag.TranspileError {
	if terr, ok := err.(*diag.TranspileError); ok {
		return terr
	}
	return diag.NewTranspileError(diag.KindGeneric, err.Error())
}

func writeOutput(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// BuildFile transpiles a single file to outPath, bypassing directory
// discovery. Used by single-file invocations and the watcher.
func (p *Pipeline) BuildFile(ctx context.Context, nsPath, outPath string) (FileResult, error) {
	res := p.buildFile(ctx, filepath.Dir(nsPath), filepath.Dir(outPath), nsPath)
	if res.Err != nil {
		return res, res.Err
	}
	return res, nil
}
