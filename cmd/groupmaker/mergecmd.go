// Copyright (c) 2024 The btctreap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btctreap/groups"
	"github.com/btcsuite/btctreap/treap"
)

// mergedFilename is the name of the file written by the merge command.
const mergedFilename = "final_merge.csv"

// mergeCmd defines the configuration options for the merge command.
type mergeCmd struct{}

var (
	// mergeCfg defines the configuration options for the command.
	mergeCfg = mergeCmd{}
)

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *mergeCmd) Execute(args []string) error {
	// Setup the global config options and ensure they are valid.
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) < 2 {
		return errors.New("required left and right roster file " +
			"parameters not specified")
	}

	// Both rosters share the source so the merged priorities come from a
	// single stream.
	src := prioritySource()
	left, err := groups.LoadRosterFile(args[0], src)
	if err != nil {
		return err
	}
	right, err := groups.LoadRosterFile(args[1], src)
	if err != nil {
		return err
	}

	merged, err := groups.MergeRosters(left, right)
	if errors.Is(err, treap.ErrInvalidMerge) {
		return fmt.Errorf("unable to merge %s into %s: %w", args[1],
			args[0], err)
	}
	if err != nil {
		return err
	}

	err = groups.SaveRosterFile(outputPath(mergedFilename), merged)
	if err != nil {
		return err
	}
	log.Infof("Merged rosters into %d students", merged.Len())
	return nil
}

// Usage overrides the usage display for the command.
func (cmd *mergeCmd) Usage() string {
	return "<left.csv> <right.csv>"
}
