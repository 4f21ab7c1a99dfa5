package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/glamourgo/internal/design"
)

// migrateResult: outcome for one input line.
type migrateResult struct {
	line        int // 1-based, blank lines not counted
	encoded     string
	fingerprint uint64
	err         error
}

// migrateReport summarizes a batch migration.
type migrateReport struct {
	Written    int
	Duplicates int
	Rejected   map[string]int // error kind → count
}

func runMigrate(ctx context.Context, a *app, args []string) error {
	if err := expectArgs("migrate", args, 2); err != nil {
		return err
	}

	lines, err := readLines(args[0])
	if err != nil {
		return err
	}

	dec, _, err := a.decoder(ctx)
	if err != nil {
		return err
	}

	results, err := migrateLines(ctx, dec, lines, a.cfg.Batch.Workers)
	if err != nil {
		return err
	}

	out, err := os.Create(args[1])
	if err != nil {
		return fmt.Errorf("creating %s: %w", args[1], err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	report := writeMigrated(w, results)
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", args[1], err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", args[1], err)
	}

	slog.Info("migration finished",
		"written", report.Written,
		"duplicates", report.Duplicates,
		"rejected", report.Rejected,
	)
	fmt.Fprintf(a.out, "written=%d duplicates=%d rejected=%d\n", report.Written, report.Duplicates, report.rejectedTotal())
	return nil
}

// migrateLines re-encodes every non-blank line with at most workers decoders in flight.
// Each result keeps its input position; a rejected line is not an error of the batch.
func migrateLines(ctx context.Context, dec *design.Decoder, lines []string, workers int) ([]migrateResult, error) {
	results := make([]migrateResult, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, line := range lines {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r := migrateResult{line: i + 1}
			d, err := dec.DecodeString(strings.TrimSpace(line))
			if err != nil {
				r.err = err
			} else {
				r.encoded = design.EncodeToString(&d)
				r.fingerprint = design.Fingerprint(&d)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("migrating designs: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("migrating designs: %w", err)
	}
	return results, nil
}

// writeMigrated writes accepted designs in input order, skipping repeats of an
// already written fingerprint.
func writeMigrated(w *bufio.Writer, results []migrateResult) migrateReport {
	report := migrateReport{Rejected: make(map[string]int)}
	seen := make(map[uint64]struct{}, len(results))

	for _, r := range results {
		if r.err != nil {
			kind := design.ErrorKind(r.err)
			report.Rejected[kind]++
			slog.Warn("design rejected", "line", r.line, "kind", kind, "err", r.err)
			continue
		}
		if _, dup := seen[r.fingerprint]; dup {
			report.Duplicates++
			continue
		}
		seen[r.fingerprint] = struct{}{}
		w.WriteString(r.encoded)
		w.WriteByte('\n')
		report.Written++
	}
	return report
}

func (r migrateReport) rejectedTotal() int {
	n := 0
	for _, c := range r.Rejected {
		n += c
	}
	return n
}

// readLines returns the non-blank lines of a file.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}
