package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"
)

func newCmd_VerifyIndex() *cli.Command {
	var indexPath string
	return &cli.Command{
		Name:        "verify",
		Usage:       "Verify that an index file matches its input.",
		Description: "Re-scans the input with the configuration recorded in the index header and checks that the result is byte-identical to the index file.",
		ArgsUsage:   "--index=<index-file> <input>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "index",
				Usage:       "path to the index file",
				Required:    true,
				Destination: &indexPath,
			},
		},
		Action: func(c *cli.Context) error {
			if c.Args().Len() != 1 {
				return fmt.Errorf("expected <input> argument, got %d", c.Args().Len())
			}
			inputPath := c.Args().First()
			{
				startedAt := time.Now()
				defer func() {
					klog.Infof("Finished in %s", time.Since(startedAt))
				}()
				klog.Infof("Verifying index %s against %s", indexPath, inputPath)
				if err := verifyIndex(c.Context, inputPath, indexPath); err != nil {
					return err
				}
				klog.Info("Index verified successfully")
			}
			return nil
		},
	}
}
