package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/eiskasten/wc-beacon/pcd"
)

func doDec(logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("dec", flag.ExitOnError)
	epcdPath := fs.String("epcd", "", "path to the captured encrypted wondercard buffer")
	checksumFlag := fs.String("checksum", "", "16-bit checksum the broadcaster used, as a decimal or 0x-prefixed hex literal")
	addrFlag := fs.String("address", "", "MAC address the broadcaster used")
	outPath := fs.String("pcd", "", "path to write the decrypted wondercard file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *epcdPath == "" || *checksumFlag == "" || *addrFlag == "" || *outPath == "" {
		return fmt.Errorf("wcbeacon dec: --epcd, --checksum, --address, and --pcd are all required")
	}

	checksum64, err := strconv.ParseUint(*checksumFlag, 0, 16)
	if err != nil {
		return fmt.Errorf("wcbeacon dec: --checksum: %w", err)
	}
	addr, err := pcd.ParseMACAddress(*addrFlag)
	if err != nil {
		return err
	}

	b, err := readExact(*epcdPath, pcd.ExtendedLength)
	if err != nil {
		return err
	}
	enc, err := pcd.NewEncrypted(b)
	if err != nil {
		return err
	}

	ext := enc.Decrypt(addr, uint16(checksum64))
	out := ext.Simplify().ToRaw().Bytes()
	if err := os.WriteFile(*outPath, out[:], 0o644); err != nil {
		return fmt.Errorf("wcbeacon dec: writing %s: %w", *outPath, err)
	}
	logger.Info("decrypted wondercard", "epcd", *epcdPath, "pcd", *outPath, "address", addr)
	return nil
}
