package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/eiskasten/wc-beacon/pcd"
)

func doSet(logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("set", flag.ExitOnError)
	inPath := fs.String("pcd", "", "existing wondercard to start from (defaults to an all-zero wondercard)")
	outPath := fs.String("output", "", "path to write the edited wondercard file")
	pgtPath := fs.String("pgt", "", "path to a raw PGT-length payload file, replacing the gift payload wholesale")
	title := fs.String("title", "", "title text")
	kind := fs.String("kind", "", "card type, e.g. pokemon, item, manaphy-egg")
	cardID := fs.Int("card-id", -1, "numeric card id")
	giftInstance := fs.Int("gift-instance", -1, "gift instance id")
	games := fs.String("games", "", "comma-separated list of redeemable games, e.g. diamond,pearl")
	description := fs.String("description", "", "comment text")
	redistribution := fs.Int("redistribution", -1, "redistribution counter")
	icons := fs.String("icons", "", "comma-separated list of exactly 3 Pokédex numbers")
	date := fs.String("date", "", "received date as YYYY-MM-DD")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *outPath == "" {
		return fmt.Errorf("wcbeacon set: --output is required")
	}

	var part pcd.Partitioned
	var m pcd.DeserializedMetadata
	if *inPath != "" {
		raw, err := readExact(*inPath, pcd.PCDLength)
		if err != nil {
			return err
		}
		r, err := pcd.NewRaw(raw)
		if err != nil {
			return err
		}
		part = r.ToPartitioned()
		m, err = pcd.ParseMetadata(part)
		if err != nil {
			return err
		}
	}

	if *pgtPath != "" {
		pgtBytes, err := readExact(*pgtPath, pcd.PGTLength)
		if err != nil {
			return err
		}
		copy(m.PGT[:], pgtBytes)
	}
	if *title != "" {
		m.Title = *title
	}
	if *kind != "" {
		ct, err := pcd.ParseCardType(*kind)
		if err != nil {
			return err
		}
		m.CardType = ct
	}
	if *cardID >= 0 {
		m.CardID = uint16(*cardID)
	}
	if *giftInstance >= 0 {
		m.GiftInstance = uint16(*giftInstance)
	}
	if *games != "" {
		g, err := parseGameSet(*games)
		if err != nil {
			return err
		}
		m.Games = g
	}
	if *description != "" {
		m.Comment = *description
	}
	if *redistribution >= 0 {
		m.Redistribution = uint8(*redistribution)
	}
	if *icons != "" {
		i, err := parseIcons(*icons)
		if err != nil {
			return err
		}
		m.Icons = i
	}
	if *date != "" {
		y, mo, d, err := parseISODate(*date)
		if err != nil {
			return err
		}
		received, err := pcd.DaysFromDate(y, mo, d)
		if err != nil {
			return err
		}
		m.Received = received
	}

	newPart, err := m.Apply(part)
	if err != nil {
		return err
	}
	out := newPart.ToRaw().Bytes()
	if err := os.WriteFile(*outPath, out[:], 0o644); err != nil {
		return fmt.Errorf("wcbeacon set: writing %s: %w", *outPath, err)
	}
	logger.Info("wrote wondercard", "output", *outPath, "title", m.Title, "card_type", m.CardType)
	return nil
}

func parseISODate(s string) (year, month, day int, err error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("wcbeacon set: --date: %w", err)
	}
	return t.Year(), int(t.Month()), t.Day(), nil
}
