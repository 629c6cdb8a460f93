package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	studipsync "github.com/N-Coder/studip-sync"
	"github.com/N-Coder/studip-sync/goquery"
	"golang.org/x/sync/errgroup"
)

// renderFunc turns one parsed page into the text printed for it.
type renderFunc func(doc *goquery.Document) (string, error)

// process parses the given files concurrently and prints one rendering per
// file in argument order; a document without records prints an empty line.
// Row faults (EEXTRACT) do not stop the run: they are returned after every
// output has been written. Any other error aborts.
func process(deps *Dependencies, files []string, render renderFunc) error {
	outputs := make([]string, len(files))
	faults := make([]error, len(files))

	var stdin []byte
	for _, f := range files {
		if f == "-" {
			data, err := io.ReadAll(deps.Stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			stdin = data
			break
		}
	}

	g, ctx := errgroup.WithContext(deps.Ctx)
	if deps.Concurrency > 0 {
		g.SetLimit(deps.Concurrency)
	}

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			doc, err := parseFile(file, stdin, deps.BaseURL)
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}

			out, err := render(doc)
			if err != nil && studipsync.ErrorCode(err) != studipsync.EEXTRACT {
				return fmt.Errorf("%s: %w", file, err)
			}
			if err != nil {
				faults[i] = fmt.Errorf("%s: %w", file, err)
			}
			outputs[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	// One block per file, even when a document has nothing to print.
	for _, out := range outputs {
		fmt.Fprintln(deps.Stdout, out)
	}

	if err := errors.Join(faults...); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}

func parseFile(file string, stdin []byte, baseURL string) (*goquery.Document, error) {
	if file == "-" {
		return goquery.Parse(bytes.NewReader(stdin), "", baseURL)
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return goquery.Parse(f, "", baseURL)
}
