// Copyright
// SPDX-License-Identifier: MIT
// bundleboard: terminal UI for bulk actions on a worksheet of bundles
package main

import (
	"flag"
	"fmt"
	"os"

	"bundleboard/internal/shared"
	"bundleboard/internal/tui"
	"bundleboard/internal/worksheet"
)

const defaultWorksheet = "worksheet.json"

func main() {
	var (
		wsPath      = flag.String("w", defaultWorksheet, "worksheet JSON file")
		storeDir    = flag.String("store", ".bundleboard/store", "bundle content store directory")
		dryRun      = flag.Bool("n", false, "review only; do not write the worksheet back")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(shared.Version)
		return
	}

	ws, err := worksheet.Load(*wsPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bundleboard:", err)
		os.Exit(1)
	}

	out, err := tui.Run(ws, *storeDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bundleboard:", err)
		os.Exit(1)
	}
	if out == nil {
		fmt.Println("no changes")
		return
	}

	for _, line := range out.Applied {
		fmt.Println(line)
	}
	if *dryRun {
		fmt.Println("dry run: worksheet not written")
		return
	}
	if err := worksheet.Save(*wsPath, out.Worksheet); err != nil {
		fmt.Fprintln(os.Stderr, "bundleboard:", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *wsPath)
}
