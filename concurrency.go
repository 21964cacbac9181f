package weave

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// File pairs a logical filename with its source bytes, the input unit
// for CompileAll.
type File struct {
	Name string
	Src  []byte
}

// CompileAll parses every file concurrently, each against its own
// Arena, and returns one Compilation per input in the same order as
// files. No state is shared between the per-file parses (spec §5:
// "multiple compilations may run in parallel, each with its own
// arena").
//
// CompileAll itself never fails: a malformed file yields a
// Compilation with recorded diagnostics, not an error. The returned
// error is non-nil only if ctx is canceled before every file finishes.
func CompileAll(ctx context.Context, files []File, opts Options) ([]*Compilation, error) {
	results := make([]*Compilation, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = ParseFile(f.Name, f.Src, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
