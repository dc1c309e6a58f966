// Package tuplegen renders the tuple family from a single template, one type
// per arity, so that every arity shares exactly the same contract.
package tuplegen

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"log/slog"
	"os"

	"github.com/amp-labs/amp-generics/logger"
)

type fileModel struct {
	Package string
	Arities []arity
}

// Render returns the gofmt'd source of the tuple family described by cfg.
func Render(cfg Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	model := fileModel{Package: cfg.Package}
	for n := cfg.MinArity; n <= cfg.MaxArity; n++ {
		model.Arities = append(model.Arities, newArity(n))
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, model); err != nil {
		return nil, fmt.Errorf("executing tuple template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}

	return src, nil
}

// WriteFile renders cfg and writes the result to path. The file is only
// rewritten when its contents change, which keeps timestamps stable for
// build caches. It reports whether the file was written.
func WriteFile(ctx context.Context, log *slog.Logger, cfg Config, path string) (bool, error) {
	src, err := Render(cfg)
	if err != nil {
		return false, err
	}

	existing, err := os.ReadFile(path)
	if err == nil && bytes.Equal(existing, src) {
		log.DebugContext(ctx, "generated tuples unchanged", "path", path)

		return false, nil
	}

	if err := os.WriteFile(path, src, 0o644); err != nil { //nolint:gosec,mnd
		return false, logger.AnnotateError(fmt.Errorf("writing generated tuples: %w", err), "path", path)
	}

	log.InfoContext(ctx, "generated tuples",
		"path", path,
		"package", cfg.Package,
		"min_arity", cfg.MinArity,
		"max_arity", cfg.MaxArity,
		"bytes", len(src))

	return true, nil
}
