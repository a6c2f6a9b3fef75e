// Command wcbeacon distributes, decodes, and edits Generation IV Pokémon
// Mystery Gift wondercards over the Nintendo DS "Wireless Communications"
// beacon protocol.
package main

import (
	"fmt"
	"log/slog"
	"os"
)

var commands = []struct {
	name string
	do   func(logger *slog.Logger, args []string) error
}{
	{"dist", doDist},
	{"dec", doDec},
	{"info", doInfo},
	{"set", doSet},
}

func usage() {
	fmt.Fprintf(os.Stderr, `wcbeacon distributes and inspects Generation IV Mystery Gift wondercards.

Usage:

	wcbeacon command [arguments]

The commands are:

	dist   broadcast a wondercard as a cyclic beacon frame stream
	dec    decrypt a captured broadcast back into a wondercard file
	info   print a wondercard's metadata
	set    edit a wondercard's metadata fields
`)
}

func main() {
	if err := main1(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main1() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}
	for _, c := range commands {
		if args[0] == c.name {
			return c.do(logger, args[1:])
		}
	}
	usage()
	os.Exit(1)
	return nil
}
