package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/eiskasten/wc-beacon/pcd"
)

// infoJSON is the --json output shape: a flattened, human-legible mirror of
// pcd.DeserializedMetadata. The raw PGT buffer is omitted since it is
// redundant with the editable fields and not meant for round-tripping
// through JSON (use --pgt with set for that).
type infoJSON struct {
	Title          string `json:"title"`
	CardType       string `json:"card_type"`
	GiftInstance   uint16 `json:"gift_instance"`
	CardID         uint16 `json:"card_id"`
	Games          string `json:"games"`
	Comment        string `json:"comment"`
	Icons          [3]uint16 `json:"icons"`
	IconNames      string `json:"icon_names"`
	Redistribution uint8  `json:"redistribution"`
	Received       uint16 `json:"received"`
	ReceivedDate   string `json:"received_date"`
}

func doInfo(logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	pcdPath := fs.String("pcd", "", "path to the wondercard file to inspect")
	asJSON := fs.Bool("json", false, "print as JSON instead of a human-readable summary")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *pcdPath == "" {
		return fmt.Errorf("wcbeacon info: --pcd is required")
	}

	raw, err := readExact(*pcdPath, pcd.PCDLength)
	if err != nil {
		return err
	}
	r, err := pcd.NewRaw(raw)
	if err != nil {
		return err
	}
	m, err := pcd.ParseMetadata(r.ToPartitioned())
	if err != nil {
		return err
	}

	year, month, day := pcd.DaysSince2000(m.Received)

	if *asJSON {
		out := infoJSON{
			Title:          m.Title,
			CardType:       m.CardType.String(),
			GiftInstance:   m.GiftInstance,
			CardID:         m.CardID,
			Games:          m.Games.String(),
			Comment:        m.Comment,
			Icons:          m.Icons,
			IconNames:      iconNames(m.Icons),
			Redistribution: m.Redistribution,
			Received:       m.Received,
			ReceivedDate:   fmt.Sprintf("%04d-%02d-%02d", year, month, day),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("title:          %s\n", m.Title)
	fmt.Printf("card type:      %s\n", m.CardType)
	fmt.Printf("gift instance:  %d\n", m.GiftInstance)
	fmt.Printf("card id:        %d\n", m.CardID)
	fmt.Printf("games:          %s\n", m.Games)
	fmt.Printf("comment:        %s\n", m.Comment)
	fmt.Printf("icons:          %s\n", iconNames(m.Icons))
	fmt.Printf("redistribution: %d\n", m.Redistribution)
	fmt.Printf("received:       %04d-%02d-%02d (raw %d)\n", year, month, day, m.Received)
	return nil
}
