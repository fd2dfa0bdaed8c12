package main

import (
	"fmt"
	"runtime/debug"

	"github.com/urfave/cli/v2"
)

var (
	GitCommit string
	GitTag    string
)

func newCmd_Version() *cli.Command {
	return &cli.Command{
		Name:        "version",
		Usage:       "Print version information of this binary.",
		Description: "Print version information of this binary.",
		Action: func(c *cli.Context) error {
			fmt.Println("byteindex")
			fmt.Printf("Tag/Branch: %s\n", GitTag)
			fmt.Printf("Commit: %s\n", GitCommit)
			if info, ok := debug.ReadBuildInfo(); ok {
				fmt.Printf("More info:\n")
				for _, setting := range info.Settings {
					switch setting.Key {
					case "-compiler", "GOARCH", "GOOS", "vcs", "vcs.revision", "vcs.time", "vcs.modified":
						fmt.Printf("  %s: %s\n", setting.Key, setting.Value)
					}
				}
			}
			return nil
		},
	}
}
