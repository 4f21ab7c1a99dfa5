package main

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/glamourgo/internal/design"
)

func runDecode(ctx context.Context, a *app, args []string) error {
	if err := expectArgs("decode", args, 1); err != nil {
		return err
	}

	dec, _, err := a.decoder(ctx)
	if err != nil {
		return err
	}

	d, err := dec.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("decoding design (%s): %w", design.ErrorKind(err), err)
	}

	view := toView(&d)

	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("writing yaml: %w", err)
	}
	return enc.Close()
}
