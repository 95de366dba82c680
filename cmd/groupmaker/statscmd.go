// Copyright (c) 2024 The btctreap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"

	"github.com/btcsuite/btctreap/groups"
)

// statsCmd defines the configuration options for the stats command.
type statsCmd struct{}

var (
	// statsCfg defines the configuration options for the command.
	statsCfg = statsCmd{}
)

// Execute is the main entry point for the command.  It's invoked by the parser.
func (cmd *statsCmd) Execute(args []string) error {
	// Setup the global config options and ensure they are valid.
	if err := setupGlobalConfig(); err != nil {
		return err
	}

	if len(args) < 1 {
		return errors.New("required roster file parameter not specified")
	}
	roster, err := groups.LoadRosterFile(args[0], prioritySource())
	if err != nil {
		return err
	}

	log.Infof("Students: %d", roster.Len())
	log.Infof("Treap height: %d", roster.Height())
	if first, ok := roster.First(); ok {
		log.Infof("First registered: %v", first)
	}
	if last, ok := roster.Last(); ok {
		log.Infof("Last registered: %v", last)
	}
	return nil
}

// Usage overrides the usage display for the command.
func (cmd *statsCmd) Usage() string {
	return "<roster.csv>"
}
