package main

import (
	"context"
	"fmt"
	"strings"
)

const itemsLimit = 20

func runItems(ctx context.Context, a *app, args []string) error {
	if len(args) == 0 {
		return expectArgs("items", args, 1)
	}

	items, _, err := a.catalog(ctx)
	if err != nil {
		return err
	}

	found := items.FindItems(strings.Join(args, " "), itemsLimit)
	if len(found) == 0 {
		fmt.Fprintln(a.out, "no items found")
		return nil
	}
	for _, it := range found {
		fmt.Fprintf(a.out, "%8d  %-10s  %s\n", it.ID, it.Type, it)
	}
	return nil
}
