package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/eiskasten/wc-beacon/pcd"
	"github.com/eiskasten/wc-beacon/species"
)

// readExact reads path and requires its length to equal want, returning a
// descriptive error otherwise so CLI users see a file-size mismatch instead
// of a cryptic downstream *pcd.WrongSizeError.
func readExact(path string, want int) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("wcbeacon: reading %s: %w", path, err)
	}
	if len(b) != want {
		return nil, fmt.Errorf("wcbeacon: %s: want %d bytes, got %d", path, want, len(b))
	}
	return b, nil
}

func parseGameSet(csv string) (pcd.GameSet, error) {
	var g pcd.GameSet
	if csv == "" {
		return g, nil
	}
	for _, tok := range strings.Split(csv, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		bit, err := pcd.ParseGameName(tok)
		if err != nil {
			return 0, err
		}
		g = g.With(bit)
	}
	return g, nil
}

func parseIcons(csv string) ([3]uint16, error) {
	var icons [3]uint16
	if csv == "" {
		return icons, nil
	}
	parts := strings.Split(csv, ",")
	if len(parts) != 3 {
		return icons, fmt.Errorf("wcbeacon: --icons wants exactly 3 comma-separated dex numbers, got %d", len(parts))
	}
	for i, p := range parts {
		n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 16)
		if err != nil {
			return icons, fmt.Errorf("wcbeacon: --icons: %w", err)
		}
		icons[i] = uint16(n)
	}
	return icons, nil
}

func iconNames(icons [3]uint16) string {
	names := make([]string, len(icons))
	for i, dex := range icons {
		if dex == 0 {
			names[i] = "none"
			continue
		}
		if name, ok := species.Default().Name(int(dex)); ok {
			names[i] = name
			continue
		}
		names[i] = fmt.Sprintf("#%d", dex)
	}
	return strings.Join(names, ", ")
}
