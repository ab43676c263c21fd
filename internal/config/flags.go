package config

import (
	"flag"
	"os"
	"strings"
)

// parses CLI flags for the indexer
func ParseIndexerFlags() Flags {
	args := os.Args[2:]

	fs := flag.NewFlagSet("index", flag.ExitOnError)
	types := fs.String("types", "", "comma-separated entity types to index (default: all)")
	dryRun := fs.Bool("dry-run", false, "render and check documents without embedding or inserting")
	fs.Parse(args) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	var typeList []string
	if *types != "" {
		for _, t := range strings.Split(*types, ",") {
			typeList = append(typeList, strings.TrimSpace(t))
		}
	}

	return Flags{Types: typeList, DryRun: *dryRun}
}
