// Package app wires the analysis pipeline together: it discovers document
// collections, runs parse → segment → score → rank → refine per collection,
// and writes the resulting records. Failures on one document or collection
// degrade that unit and never abort siblings.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/hyperifyio/gosift/internal/parse"
	"github.com/hyperifyio/gosift/internal/persona"
	"github.com/hyperifyio/gosift/internal/rank"
	"github.com/hyperifyio/gosift/internal/record"
	"github.com/hyperifyio/gosift/internal/refine"
	"github.com/hyperifyio/gosift/internal/report"
	"github.com/hyperifyio/gosift/internal/request"
	"github.com/hyperifyio/gosift/internal/segment"
)

// ErrNoCollections is returned when the base directory contains nothing to
// analyze.
var ErrNoCollections = errors.New("no collections found")

// App runs the analysis pipeline over collections under a base directory.
type App struct {
	cfg Config
	tax *persona.Taxonomy
	log zerolog.Logger

	// recorder builds output records; its clock is injectable for tests.
	recorder record.Builder
}

// New constructs an App. The taxonomy is built once here and treated as
// read-only for the lifetime of the process.
func New(cfg Config, log zerolog.Logger) *App {
	cfg.withDefaults()
	return &App{cfg: cfg, tax: persona.NewTaxonomy(), log: log}
}

// DocumentPages is one document's parsed pages, bound to its filename.
type DocumentPages struct {
	Filename string
	Pages    []parse.Page
}

// Stats summarizes one collection's analysis for reporting.
type Stats struct {
	Collection string
	Category   persona.Category
	Documents  int
	Pages      int
	Sections   int
}

// Analyze runs the scoring core over already-parsed documents. It is pure
// apart from the output timestamp: identical inputs produce identical
// section and summary lists regardless of worker count or run order.
func (a *App) Analyze(m request.Manifest, docs []DocumentPages) (*record.Output, Stats) {
	cat := persona.Classify(m.Persona.Role)
	profile := persona.ProfileFor(cat)
	task := m.JobToBeDone.Task

	var sections []segment.Section
	var pages []rank.PageText
	pageCount := 0
	for _, doc := range docs {
		for _, s := range segment.Document(doc.Filename, doc.Pages) {
			sections = append(sections, s)
		}
		for _, p := range doc.Pages {
			pages = append(pages, rank.PageText{Document: doc.Filename, Number: p.Number, Text: p.Text})
			pageCount++
		}
	}

	out := a.recorder.New(m)

	for i, s := range rank.Sections(sections, a.tax, cat, task) {
		out.AddSection(s.Section.Document, s.Section.Title, i+1, s.Section.Page)
	}

	// Refinement runs only on the top-ranked pages; entries failing the
	// acceptance length are dropped without backfilling, so this list may
	// hold fewer than five records.
	for _, p := range rank.Pages(pages, a.tax, cat, task) {
		refined := refine.Refine(p.Page.Text, profile)
		if refine.Accept(refined) {
			out.AddSubsection(p.Page.Document, refined, p.Page.Number)
		}
	}

	return out, Stats{
		Category:  cat,
		Documents: len(docs),
		Pages:     pageCount,
		Sections:  len(sections),
	}
}

// AnalyzeCollection loads a collection's manifest, parses its documents and
// runs the analysis. A malformed manifest is a hard failure for this
// collection; parse failures on individual documents degrade to zero
// contribution.
func (a *App) AnalyzeCollection(ctx context.Context, dir string) (*record.Output, Stats, error) {
	m, err := request.Load(filepath.Join(dir, a.cfg.ManifestName))
	if err != nil {
		return nil, Stats{}, err
	}

	docs := a.parseDocuments(ctx, dir, m.Documents)
	out, stats := a.Analyze(m, docs)
	stats.Collection = filepath.Base(dir)
	return out, stats, nil
}

// parseDocuments fans document parsing out over a bounded worker pool and
// merges results back in manifest order.
func (a *App) parseDocuments(ctx context.Context, dir string, docs []request.Document) []DocumentPages {
	results := make([]DocumentPages, len(docs))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < a.cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					results[i] = DocumentPages{Filename: docs[i].Filename}
					continue
				}
				results[i] = a.parseDocument(dir, docs[i].Filename)
			}
		}()
	}
	for i := range docs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}

// parseDocument resolves and parses one document. Every failure path returns
// an empty page list; the document then contributes nothing to the output.
func (a *App) parseDocument(dir, filename string) DocumentPages {
	result := DocumentPages{Filename: filename}

	path := filepath.Join(dir, a.cfg.DocsDir, filename)
	if _, err := os.Stat(path); err != nil {
		path = filepath.Join(dir, filename)
	}

	parser, err := parse.ForFile(filename)
	if err != nil {
		a.log.Warn().Str("document", filename).Err(err).Msg("skipping document")
		return result
	}
	pages, err := parser.Parse(path)
	if err != nil {
		a.log.Warn().Str("document", filename).Err(err).Msg("parse failed, document skipped")
		return result
	}
	if len(pages) == 0 {
		a.log.Warn().Str("document", filename).Msg("document produced no text")
		return result
	}
	result.Pages = pages
	return result
}

// DiscoverCollections lists subdirectories of the base directory that carry
// an input manifest, in lexical order. A base directory that itself carries
// a manifest is returned as the single collection.
func (a *App) DiscoverCollections() ([]string, error) {
	if _, err := os.Stat(filepath.Join(a.cfg.BaseDir, a.cfg.ManifestName)); err == nil {
		return []string{a.cfg.BaseDir}, nil
	}

	entries, err := os.ReadDir(a.cfg.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("read base dir: %w", err)
	}
	var dirs []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(a.cfg.BaseDir, e.Name())
		if _, err := os.Stat(filepath.Join(dir, a.cfg.ManifestName)); err == nil {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		return nil, ErrNoCollections
	}
	return dirs, nil
}

// RunCollection analyzes one collection and writes its record (and optional
// PDF report). Returns the record and stats for summary printing.
func (a *App) RunCollection(ctx context.Context, dir string) (*record.Output, Stats, error) {
	out, stats, err := a.AnalyzeCollection(ctx, dir)
	if err != nil {
		return nil, stats, err
	}
	if a.cfg.CheckOutput {
		if err := out.Validate(); err != nil {
			return nil, stats, fmt.Errorf("output validation: %w", err)
		}
	}
	if err := out.Save(filepath.Join(dir, a.cfg.OutputName)); err != nil {
		return nil, stats, err
	}
	return out, stats, nil
}

// Run processes every discovered collection. Per-collection failures are
// logged and skipped; Run fails only when nothing could be processed.
func (a *App) Run(ctx context.Context, onDone func(dir string, out *record.Output, stats Stats)) error {
	dirs, err := a.DiscoverCollections()
	if err != nil {
		return err
	}

	processed := 0
	for _, dir := range dirs {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		out, stats, err := a.RunCollection(ctx, dir)
		if err != nil {
			a.log.Error().Str("collection", dir).Err(err).Msg("collection failed")
			continue
		}
		a.log.Info().
			Str("collection", dir).
			Str("persona", stats.Category.String()).
			Int("documents", stats.Documents).
			Int("pages", stats.Pages).
			Int("sections", stats.Sections).
			Msg("collection processed")
		if a.cfg.PDFReport != "" {
			pdfPath := filepath.Join(dir, a.cfg.PDFReport)
			if err := report.WritePDF(out, pdfPath); err != nil {
				a.log.Warn().Str("path", pdfPath).Err(err).Msg("pdf report failed")
			}
		}
		if onDone != nil {
			onDone(dir, out, stats)
		}
		processed++
	}
	if processed == 0 {
		return fmt.Errorf("all %d collections failed", len(dirs))
	}
	return nil
}
