// Copyright (c) 2024 The btctreap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"time"

	"github.com/btcsuite/btctreap/groups"
)

// groupedFilename is the name of the file written by the group command.
const groupedFilename = "grouped.csv"

// groupCmd defines the configuration options for the group command.
type groupCmd struct {
	Size int    `short:"n" long:"size" description:"Number of students per group"`
	Mode string `short:"m" long:"mode" description:"Order students are assigned to groups in {random, ascending, descending}"`
}

var (
	// groupCfg defines the configuration options for the command.
	groupCfg = groupCmd{
		Size: defaultGroupSize,
		Mode: defaultMode,
	}
)

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *groupCmd) Execute(args []string) error {
	// Setup the global config options and ensure they are valid.
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) < 1 {
		return errors.New("required roster file parameter not specified")
	}
	mode, err := groups.ParseMode(cmd.Mode)
	if err != nil {
		return err
	}

	roster, err := groups.LoadRosterFile(args[0], prioritySource())
	if err != nil {
		return err
	}

	startTime := time.Now()
	numGroups, err := groups.SaveGroupsFile(outputPath(groupedFilename),
		roster, cmd.Size, mode)
	if err != nil {
		return err
	}
	log.Infof("Divided %d students into %d groups in %v", roster.Len(),
		numGroups, time.Since(startTime))
	return nil
}

// Usage overrides the usage display for the command.
func (cmd *groupCmd) Usage() string {
	return "<roster.csv>"
}
