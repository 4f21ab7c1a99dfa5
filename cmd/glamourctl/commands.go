package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
)

type command struct {
	name  string
	usage string
	desc  string
	run   func(ctx context.Context, a *app, args []string) error
}

var commands []command

func registerCommand(name, usage, desc string, fn func(ctx context.Context, a *app, args []string) error) {
	commands = append(commands, command{name: name, usage: usage, desc: desc, run: fn})
}

func init() {
	registerCommand("decode", "decode <base64>", "Print a design string as YAML", runDecode)
	registerCommand("encode", "encode <file.yaml | ->", "Encode a YAML design to a v5 design string", runEncode)
	registerCommand("migrate", "migrate <in> <out>", "Re-encode design strings to v5, dropping duplicates", runMigrate)
	registerCommand("items", "items <query>", "Search the item catalog by name", runItems)
	registerCommand("seed-db", "seed-db", "Write the built-in catalog into PostgreSQL", runSeedDB)
}

func lookupCommand(name string) (command, bool) {
	i := slices.IndexFunc(commands, func(c command) bool { return c.name == name })
	if i < 0 {
		return command{}, false
	}
	return commands[i], true
}

func printUsage(w io.Writer) {
	maxLen := 0
	for _, c := range commands {
		maxLen = max(maxLen, len(c.usage))
	}

	fmt.Fprintln(w, "Usage: glamourctl <command> [args]")
	fmt.Fprintln(w, "Commands:")
	for _, c := range commands {
		padding := strings.Repeat(" ", maxLen-len(c.usage)+2)
		fmt.Fprintf(w, "  %s%s%s\n", c.usage, padding, c.desc)
	}
}

// expectArgs checks the positional argument count of a command.
func expectArgs(name string, args []string, n int) error {
	if len(args) != n {
		c, _ := lookupCommand(name)
		return fmt.Errorf("usage: glamourctl %s", c.usage)
	}
	return nil
}
