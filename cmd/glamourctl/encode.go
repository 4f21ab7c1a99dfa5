package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/glamourgo/internal/design"
)

func runEncode(ctx context.Context, a *app, args []string) error {
	if err := expectArgs("encode", args, 1); err != nil {
		return err
	}

	raw, err := readInput(a, args[0])
	if err != nil {
		return err
	}

	var view designView
	if err := yaml.Unmarshal(raw, &view); err != nil {
		return fmt.Errorf("parsing design yaml: %w", err)
	}

	items, _, err := a.catalog(ctx)
	if err != nil {
		return err
	}
	d, err := fromView(view, items)
	if err != nil {
		return fmt.Errorf("building design: %w", err)
	}

	_, err = fmt.Fprintln(a.out, design.EncodeToString(&d))
	return err
}

// readInput reads a file, or stdin when path is "-".
func readInput(a *app, path string) ([]byte, error) {
	if path == "-" {
		raw, err := io.ReadAll(a.in)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return raw, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return raw, nil
}
