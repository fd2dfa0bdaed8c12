package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rpcpool/byteindex/byteindex"
	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"
)

func newCmd_Index() *cli.Command {
	var includeZero bool
	var verify bool
	return &cli.Command{
		Name:        "index",
		Usage:       "Create a byte-offset index of a file or stream.",
		Description: "Scans the input for a target byte and writes the offset after every occurrence to the output as fixed-width little-endian records, preceded by an 8-byte header. Use - to read from stdin or write to stdout.",
		ArgsUsage:   "<input> <output>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "target",
				Usage:   "byte to index on: a single character or a backslash escape like \\t",
				Value:   `\n`,
				EnvVars: []string{"BYTEINDEX_TARGET"},
			},
			&cli.UintFlag{
				Name:    "bit-size",
				Usage:   "record width in bits (8, 16, 32 or 64); offsets too large for the width wrap around",
				Value:   32,
				EnvVars: []string{"BYTEINDEX_BIT_SIZE"},
			},
			&cli.BoolFlag{
				Name:        "include-zero",
				Usage:       "write a 0 record before the first match",
				Destination: &includeZero,
			},
			&cli.BoolFlag{
				Name:        "verify",
				Usage:       "re-scan the input and verify the index after creating it",
				Destination: &verify,
			},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 2 {
				return fmt.Errorf("expected <input> <output> arguments, got %d", c.Args().Len())
			}
			inputPath := c.Args().Get(0)
			outputPath := c.Args().Get(1)

			target, err := parseTarget(c.String("target"))
			if err != nil {
				return err
			}
			width, err := byteindex.WidthFromBits(c.Uint("bit-size"))
			if err != nil {
				return err
			}

			{
				startedAt := time.Now()
				defer func() {
					klog.Infof("Finished in %s", time.Since(startedAt))
				}()
				klog.Infof("Indexing %s (target 0x%02x, %d-bit records)", inputPath, target, width.Bits())
				numRecords, err := createIndex(inputPath, outputPath, target, width, includeZero)
				if err != nil {
					return err
				}
				klog.Infof("Wrote %s records to %s", humanize.Comma(int64(numRecords)), outputPath)
			}
			if verify {
				if inputPath == "-" || outputPath == "-" {
					return fmt.Errorf("--verify requires regular files for input and output")
				}
				klog.Infof("Verifying index %s against %s", outputPath, inputPath)
				if err := verifyIndex(c.Context, inputPath, outputPath); err != nil {
					return err
				}
				klog.Info("Index verified successfully")
			}
			return nil
		},
	}
}
