package main

import (
	"flag"
	"fmt"
	"log/slog"
	"time"

	"github.com/eiskasten/wc-beacon/beacon"
	"github.com/eiskasten/wc-beacon/inject"
	"github.com/eiskasten/wc-beacon/pcd"
)

func doDist(logger *slog.Logger, args []string) error {
	fs := flag.NewFlagSet("dist", flag.ExitOnError)
	pcdPath := fs.String("pcd", "", "path to the wondercard file to broadcast")
	region := fs.String("region", "en", "two-letter region code gating which locales accept the broadcast")
	device := fs.String("device", "", "wireless interface name (accepted for CLI parity; dist never opens it directly)")
	addrFlag := fs.String("address", "02:00:00:00:00:01", "spoofed source/BSSID MAC address")
	interval := fs.Int("interval", 10240, "delay between successive frames, in microseconds")
	pcapPath := fs.String("pcap", "", "if set, append frames to this pcap capture file instead of discarding them")
	count := fs.Int("count", 0, "number of frames to send before exiting (0 means run until interrupted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *pcdPath == "" {
		return fmt.Errorf("wcbeacon dist: --pcd is required")
	}

	ggid, err := beacon.ParseGGID(*region)
	if err != nil {
		return err
	}
	addr, err := pcd.ParseMACAddress(*addrFlag)
	if err != nil {
		return err
	}

	raw, err := readExact(*pcdPath, pcd.PCDLength)
	if err != nil {
		return err
	}
	r, err := pcd.NewRaw(raw)
	if err != nil {
		return err
	}
	part := r.ToPartitioned()
	ext := part.ToExtended()
	checksum, err := ext.Checksum()
	if err != nil {
		return err
	}
	enc, err := ext.Encrypt(addr)
	if err != nil {
		return err
	}

	var sink inject.PacketSink
	if *pcapPath != "" {
		fileSink, err := inject.NewPCAPFileSink(*pcapPath)
		if err != nil {
			return err
		}
		defer fileSink.Close()
		sink = fileSink
	} else {
		sink = &inject.NullSink{}
	}

	gen := beacon.NewFrameGenerator(addr, ggid, enc, part.Header(), checksum)
	logger.Info("starting distribution", "pcd", *pcdPath, "region", ggid, "address", addr, "device", *device, "checksum", fmt.Sprintf("%#04x", checksum))

	for i := 0; *count == 0 || i < *count; i++ {
		if err := sink.Send(gen.Next()); err != nil {
			return fmt.Errorf("wcbeacon dist: sending frame %d: %w", i, err)
		}
		if *interval > 0 {
			time.Sleep(time.Duration(*interval) * time.Microsecond)
		}
	}
	if ns, ok := sink.(*inject.NullSink); ok {
		logger.Info("distribution finished", "frames_sent", ns.Sent)
	}
	return nil
}
