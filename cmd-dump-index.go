package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/rpcpool/byteindex/byteindex"
	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"
)

func newCmd_DumpIndex() *cli.Command {
	var limit uint64
	var noHeader bool
	return &cli.Command{
		Name:        "dump",
		Usage:       "Print the contents of an index file.",
		Description: "Prints a header summary followed by the decoded offset records, one per line.",
		ArgsUsage:   "<index-file>",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:        "limit",
				Usage:       "print at most this many records (0 prints all)",
				Destination: &limit,
			},
			&cli.BoolFlag{
				Name:        "no-header",
				Usage:       "print only the records, without the header summary",
				Destination: &noHeader,
			},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("expected <index-file> argument, got %d", c.Args().Len())
			}
			reader, err := byteindex.OpenMMAP(c.Args().First())
			if err != nil {
				return fmt.Errorf("failed to open index file: %w", err)
			}
			defer reader.Close()

			header := reader.Header()
			if klog.V(3).Enabled() {
				klog.Info(spew.Sdump(header))
			}
			if !noHeader {
				fmt.Printf("version: %d\n", byteindex.Version)
				fmt.Printf("record width: %d bits\n", header.Width.Bits())
				fmt.Printf("target byte: 0x%02x (%q)\n", header.Target, header.Target)
				fmt.Printf("records: %s\n", humanize.Comma(int64(reader.Count())))
			}

			numToPrint := reader.Count()
			if limit > 0 && limit < numToPrint {
				numToPrint = limit
			}
			out := bufio.NewWriter(os.Stdout)
			defer out.Flush()
			for i := uint64(0); i < numToPrint; i++ {
				offset, err := reader.Get(i)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, offset)
			}
			return nil
		},
	}
}
