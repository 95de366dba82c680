// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2024 The btctreap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	flags "github.com/jessevdk/go-flags"
)

// newParser returns the command line parser with the global options and every
// command registered.
func newParser() *flags.Parser {
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	parserFlags := flags.Options(flags.HelpFlag | flags.PassDoubleDash)
	parser := flags.NewNamedParser(appName, parserFlags)
	parser.AddGroup("Global Options", "", cfg)
	parser.AddCommand("group",
		"Divide a roster into groups",
		"Divide the students of a roster into groups of a fixed size "+
			"and write them to grouped.csv.  The random mode "+
			"shuffles the students by walking the roster treap "+
			"in pre-order.", &groupCfg)
	parser.AddCommand("split",
		"Split a roster around a registration number",
		"Split a roster into left_split.csv, holding the students "+
			"with lower registration numbers, and right_split.csv, "+
			"holding the rest.", &splitCfg)
	parser.AddCommand("merge",
		"Merge two split rosters",
		"Merge two rosters into final_merge.csv.  Every registration "+
			"number in the first roster must sort before every "+
			"registration number in the second.", &mergeCfg)
	parser.AddCommand("stats",
		"Show the size and shape of a roster", "", &statsCfg)
	return parser
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain() error {
	defer os.Stdout.Sync()
	defer closeLogRotator()

	// Parse command line and invoke the Execute function for the specified
	// command.
	parser := newParser()
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		switch {
		case errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp:
			parser.WriteHelp(os.Stderr)
		case errors.Is(err, errShowSubsystems):
			return nil
		default:
			log.Error(err)
		}

		return err
	}

	return nil
}

func main() {
	// Work around defer not working after os.Exit()
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
