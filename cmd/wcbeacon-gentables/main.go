// Command wcbeacon-gentables copies the build-time character-map and
// species text files into Go source as string constants, the same role
// `build.rs` plays for the original implementation.
// It is meant to be invoked via `go:generate` from the package doc comments
// of pokestr and species, not run standalone in normal builds (both
// packages already carry a //go:embed fallback that works without it).
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "wcbeacon-gentables:", err)
		os.Exit(1)
	}
}

func run() error {
	outDir := os.Getenv("OUT_DIR")
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", outDir, err)
	}

	if err := genCharacterMap("gen-iv-character-map.txt", filepath.Join(outDir, "pokestr_table.go")); err != nil {
		return err
	}
	if err := genSpeciesTable("species.txt", filepath.Join(outDir, "species_table.go")); err != nil {
		return err
	}
	return nil
}

// genCharacterMap reads the "0xCODE GLYPH" build-time format and emits a Go
// source file defining a compiledCharacterMapText constant holding the
// non-blank input lines as text; the constant is unparsed, so a consumer
// still passes it through LoadCharacterMap. Hand-built with fmt.Fprintf rather than
// text/template: this is a one-shot internal tool, not a library surface,
// and the teacher never reaches for text/template either.
func genCharacterMap(inPath, outPath string) error {
	lines, err := readNonEmptyLines(inPath)
	if err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "// Code generated by wcbeacon-gentables from %s. DO NOT EDIT.\n\n", inPath)
	fmt.Fprintf(w, "package pokestr\n\n")
	fmt.Fprintf(w, "// compiledCharacterMapText holds the character-map text of the\n")
	fmt.Fprintf(w, "// //go:embed default as a Go constant, in the format LoadCharacterMap\n")
	fmt.Fprintf(w, "// parses.\n")
	fmt.Fprintf(w, "const compiledCharacterMapText = ")
	writeGoStringLines(w, lines)
	fmt.Fprintf(w, "\n")
	return w.Flush()
}

// genSpeciesTable reads one species name per line and emits a Go source
// file defining a compiledSpeciesText constant, mirroring genCharacterMap.
func genSpeciesTable(inPath, outPath string) error {
	lines, err := readNonEmptyLines(inPath)
	if err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "// Code generated by wcbeacon-gentables from %s. DO NOT EDIT.\n\n", inPath)
	fmt.Fprintf(w, "package species\n\n")
	fmt.Fprintf(w, "// compiledSpeciesText is the build-time-compiled equivalent of the\n")
	fmt.Fprintf(w, "// //go:embed default.\n")
	fmt.Fprintf(w, "const compiledSpeciesText = ")
	writeGoStringLines(w, lines)
	fmt.Fprintf(w, "\n")
	return w.Flush()
}

func readNonEmptyLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}

// writeGoStringLines emits lines as a single Go string literal, joined by
// "\n", via %q so any backslashes or quotes in the source text survive
// untouched.
func writeGoStringLines(w *bufio.Writer, lines []string) {
	fmt.Fprintf(w, "%q", strings.Join(lines, "\n")+"\n")
}
