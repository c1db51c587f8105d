package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newCacheCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the offline answer cache",
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show cache statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(configPath)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.manager.Initialize(context.Background()); err != nil {
				return err
			}
			stats := a.manager.Stats()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Memory entries:\t%d\n", stats.MemoryEntries)
			fmt.Fprintf(w, "Total entries:\t%d\n", stats.TotalEntries)
			fmt.Fprintf(w, "FAQ entries:\t%d\n", stats.FAQEntries)
			fmt.Fprintf(w, "Regular entries:\t%d\n", stats.RegularEntries)
			fmt.Fprintf(w, "Hits:\t%d\n", stats.Hits)
			fmt.Fprintf(w, "Misses:\t%d\n", stats.Misses)
			fmt.Fprintf(w, "Evictions:\t%d\n", stats.Evictions)
			fmt.Fprintf(w, "Hit rate:\t%.1f%%\n", stats.HitRate*100)
			fmt.Fprintf(w, "Fully loaded:\t%v\n", stats.FullyLoaded)
			return w.Flush()
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(configPath)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.manager.ClearCache(context.Background()); err != nil {
				return err
			}
			fmt.Println("Cache cleared.")
			return nil
		},
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Initialize the cache and seed default content if empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(configPath)
			if err != nil {
				return err
			}
			defer a.close()

			if err := a.manager.Initialize(context.Background()); err != nil {
				return err
			}
			stats := a.manager.Stats()
			fmt.Printf("Cache ready: %d entries (%d FAQ).\n", stats.TotalEntries, stats.FAQEntries)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")
	cmd.AddCommand(statsCmd, clearCmd, seedCmd)
	return cmd
}
