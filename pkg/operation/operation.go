// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/wordswap/pkg/config"
	"github.com/walteh/wordswap/pkg/log"
	"github.com/walteh/wordswap/pkg/text"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 🎯 Operation is a unit of work executed by the runner
type Operation interface {
	Execute(ctx context.Context) error
}

// 🔧 Options contains what an operation needs
type Options struct {
	// Config is the validated patch job
	Config *config.Config
	// Dictionary holds the replacements
	Dictionary text.Dictionary
	// Store reads and writes files, DiskStore when nil
	Store FileStore
	// Logger prints per file lines, discarded when nil
	Logger *log.Logger
	// Diff makes check operations render a text diff per changed file
	Diff bool
}

// 📄 FileResult describes what happened to one file
type FileResult struct {
	Path         string        // Slash separated path relative to the root
	Destination  string        // Where the output was (or would be) written
	Encoding     text.Encoding // Encoding used for the scan
	Replacements uint64        // Dictionary hits
	Modified     bool          // Content changed
	Written      bool          // Output was written
	Diff         string        // Decoded text diff, check only
}

// 📊 Summary aggregates results
type Summary struct {
	Files        int
	Modified     int
	Written      int
	Replacements uint64
}

// Summarize totals a set of results
func Summarize(results []FileResult) Summary {
	var s Summary
	for _, r := range results {
		s.Files++
		s.Replacements += r.Replacements
		if r.Modified {
			s.Modified++
		}
		if r.Written {
			s.Written++
		}
	}
	return s
}

type fileFunc func(ctx context.Context, t config.Target, rel string) error

// 🧱 baseOperation holds the shared file walking and bookkeeping
type baseOperation struct {
	opts     Options
	store    FileStore
	logger   *log.Logger
	replacer *text.DictionaryReplacer

	mu      sync.Mutex
	results []FileResult
}

func newBaseOperation(opts Options) (*baseOperation, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if len(opts.Dictionary) == 0 {
		return nil, errors.Errorf("dictionary is required")
	}

	store := opts.Store
	if store == nil {
		store = DiskStore{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, zerolog.Disabled)
	}

	return &baseOperation{
		opts:     opts,
		store:    store,
		logger:   logger,
		replacer: text.NewDictionaryReplacer(opts.Dictionary),
	}, nil
}

// Results returns the recorded results sorted by path
func (b *baseOperation) Results() []FileResult {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := slices.Clone(b.results)
	slices.SortFunc(out, func(a, c FileResult) int { return strings.Compare(a.Path, c.Path) })
	return out
}

func (b *baseOperation) record(ctx context.Context, r FileResult, status string) {
	b.mu.Lock()
	b.results = append(b.results, r)
	b.mu.Unlock()

	b.logger.LogFileOperation(ctx, log.FileOperation{
		Path:         r.Path,
		Encoding:     r.Encoding.String(),
		Status:       status,
		IsModified:   r.Modified,
		Replacements: r.Replacements,
	})
}

func (b *baseOperation) sourcePath(rel string) string {
	return filepath.Join(b.opts.Config.Root, filepath.FromSlash(rel))
}

func (b *baseOperation) destinationPath(rel string) string {
	if b.opts.Config.Destination == "" {
		return b.sourcePath(rel)
	}
	return filepath.Join(b.opts.Config.Destination, filepath.FromSlash(rel))
}

// replaceFile reads rel and runs the dictionary over it
func (b *baseOperation) replaceFile(ctx context.Context, t config.Target, rel string) (*text.ReplacementResult, os.FileMode, error) {
	content, perm, err := b.store.ReadFile(ctx, b.sourcePath(rel))
	if err != nil {
		return nil, 0, err
	}

	result, err := b.replacer.ReplaceBytes(ctx, content, t.TextEncoding())
	if err != nil {
		return nil, 0, err
	}
	return result, perm, nil
}

// insideDestination reports whether rel lives in the output directory
func (b *baseOperation) insideDestination(rel string) bool {
	if b.opts.Config.Destination == "" {
		return false
	}
	out, err := filepath.Rel(b.opts.Config.Root, b.opts.Config.Destination)
	if err != nil || out == "." || out == ".." || strings.HasPrefix(out, ".."+string(filepath.Separator)) {
		return false
	}
	prefix := filepath.ToSlash(out) + "/"
	return strings.HasPrefix(rel, prefix)
}

// each calls fn once for every file selected by the targets
func (b *baseOperation) each(ctx context.Context, fn fileFunc) error {
	root := b.opts.Config.Root
	fsys := os.DirFS(root)
	seen := map[string]bool{}

	for _, t := range b.opts.Config.Targets {
		files, err := doublestar.Glob(fsys, t.Include, doublestar.WithFilesOnly())
		if err != nil {
			return errors.Errorf("matching %s: %w", t.Include, err)
		}
		slices.Sort(files)

		b.logger.StartTarget(ctx, log.TargetOperation{
			Include:  t.Include,
			Encoding: t.TextEncoding().String(),
			Root:     root,
		})

		g, gctx := errgroup.WithContext(ctx)
		if b.opts.Config.Async {
			g.SetLimit(runtime.GOMAXPROCS(0))
		} else {
			g.SetLimit(1)
		}

		for _, rel := range files {
			if seen[rel] || b.insideDestination(rel) {
				continue
			}
			seen[rel] = true

			if t.Ignored(rel) {
				b.logger.LogFileOperation(ctx, log.FileOperation{
					Path:      rel,
					Encoding:  t.TextEncoding().String(),
					Status:    "ignored",
					IsSkipped: true,
				})
				continue
			}

			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := fn(gctx, t, rel); err != nil {
					b.logger.LogFileOperation(ctx, log.FileOperation{
						Path:     rel,
						Encoding: t.TextEncoding().String(),
						Status:   "FAILED",
						IsFailed: true,
					})
					return errors.Errorf("processing %s: %w", rel, err)
				}
				return nil
			})
		}

		err = g.Wait()
		total := b.logger.EndTarget(ctx)
		if err != nil {
			return errors.Errorf("target %s: %w", t.Include, err)
		}

		zerolog.Ctx(ctx).Debug().
			Str("include", t.Include).
			Int("files", len(files)).
			Uint64("replacements", total).
			Msg("target processed")
	}

	return nil
}
