// Package species compiles the build-time Pokédex species table: an
// ordered list of names indexed by National Dex number, used to render the
// wondercard icon fields as human-readable names.
//
//go:generate go run github.com/eiskasten/wc-beacon/cmd/wcbeacon-gentables
package species

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strings"
)

//go:embed data/species.txt
var defaultSpeciesText string

// Table is a species name list, 1-indexed by Pokédex number: Table[0] is
// species #1.
type Table []string

var defaultTable Table

func init() {
	t, err := LoadTable(strings.NewReader(defaultSpeciesText))
	if err != nil {
		panic(fmt.Sprintf("species: embedded species table failed to load: %v", err))
	}
	defaultTable = t
}

// Default returns the species table compiled into the binary.
func Default() Table { return defaultTable }

// LoadTable parses one species name per line, blank lines ignored.
func LoadTable(r io.Reader) (Table, error) {
	var t Table
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		t = append(t, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("species: reading table: %w", err)
	}
	return t, nil
}

// Name returns the species name for a 1-indexed Pokédex number, or false if
// dex is out of range or 0 ("none").
func (t Table) Name(dex int) (string, bool) {
	if dex <= 0 || dex > len(t) {
		return "", false
	}
	return t[dex-1], true
}
