// Copyright (c) 2024 The btctreap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"

	"github.com/btcsuite/btctreap/groups"
)

const (
	// leftSplitFilename and rightSplitFilename are the names of the files
	// written by the split command.
	leftSplitFilename  = "left_split.csv"
	rightSplitFilename = "right_split.csv"
)

// splitCmd defines the configuration options for the split command.
type splitCmd struct{}

var (
	// splitCfg defines the configuration options for the command.
	splitCfg = splitCmd{}
)

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *splitCmd) Execute(args []string) error {
	// Setup the global config options and ensure they are valid.
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) < 2 {
		return errors.New("required roster file and registration " +
			"number parameters not specified")
	}
	roster, err := groups.LoadRosterFile(args[0], prioritySource())
	if err != nil {
		return err
	}

	left, right := roster.Split(args[1])
	err = groups.SaveRosterFile(outputPath(leftSplitFilename), left)
	if err != nil {
		return err
	}
	err = groups.SaveRosterFile(outputPath(rightSplitFilename), right)
	if err != nil {
		return err
	}
	log.Infof("Split roster at %s into %d and %d students", args[1],
		left.Len(), right.Len())
	return nil
}

// Usage overrides the usage display for the command.
func (cmd *splitCmd) Usage() string {
	return "<roster.csv> <regno>"
}
