package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:     "assistcache",
		Short:   "EcoCart offline assistant cache",
		Version: version,
	}

	root.AddCommand(
		newAskCmd(),
		newCacheCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
