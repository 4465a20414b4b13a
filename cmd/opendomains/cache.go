package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/opendomains/opendomains/internal/check"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the availability cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache entry counts",
	Run: func(cmd *cobra.Command, args []string) {
		c := openCache()
		total, available := c.Stats()

		green := color.New(color.FgGreen).SprintFunc()
		fmt.Printf("\n  Cached results: %d (%s available)\n", total, green(fmt.Sprintf("%d", available)))
		fmt.Printf("  Cache file:     %s\n\n", cfg.CachePath)
	},
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Drop expired cache entries",
	Run: func(cmd *cobra.Command, args []string) {
		c := openCache()
		removed := c.PurgeExpired()
		if err := c.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Purged %d expired entries\n", removed)
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the entire cache",
	Run: func(cmd *cobra.Command, args []string) {
		c := openCache()
		if err := c.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Cache cleared")
	},
}

func openCache() *check.Cache {
	return check.NewCache(cfg.CachePath, cfg.Checker.CacheTTLDuration())
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cachePurgeCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
