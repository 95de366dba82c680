// Copyright (c) 2024 The btctreap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package groups

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Mode selects the order students are assigned to groups in.
type Mode int

const (
	// ModeRandom assigns students in the pre-order of the roster treap.
	// The shape of the treap depends on the random node priorities, so
	// the order is effectively shuffled and unlikely to match the order
	// the roster was read in.
	ModeRandom Mode = iota

	// ModeAscending assigns students by ascending registration number.
	ModeAscending

	// ModeDescending assigns students by descending registration number.
	ModeDescending
)

// Map of Mode values to the names accepted by ParseMode.
var modeStrings = map[Mode]string{
	ModeRandom:     "random",
	ModeAscending:  "ascending",
	ModeDescending: "descending",
}

// String returns the name of the mode.
func (m Mode) String() string {
	if s, ok := modeStrings[m]; ok {
		return s
	}
	return fmt.Sprintf("Unknown Mode (%d)", int(m))
}

// ParseMode returns the mode with the passed case-insensitive name.
func ParseMode(name string) (Mode, error) {
	for mode, s := range modeStrings {
		if strings.EqualFold(name, s) {
			return mode, nil
		}
	}
	str := fmt.Sprintf("unknown grouping mode %q -- supported modes are "+
		"random, ascending and descending", name)
	return 0, makeError(ErrUnknownMode, str, nil)
}

// groupHeader is the header row written by MakeGroups.
var groupHeader = []string{"NAME", "REG NO", "GROUP"}

// MakeGroups writes every student on the roster as a CSV record of the form
// name,regno,group preceded by a header.  Students are taken in the order
// selected by mode and assigned to consecutive groups of size students,
// numbered from 1.  The last group has fewer members when the roster size is
// not a multiple of size.  It returns the number of groups written.
func MakeGroups(w io.Writer, roster *Roster, size int, mode Mode) (int, error) {
	if size < 1 {
		str := fmt.Sprintf("group size %d is invalid -- it must be at "+
			"least 1", size)
		return 0, makeError(ErrInvalidGroupSize, str, nil)
	}
	if _, ok := modeStrings[mode]; !ok {
		str := fmt.Sprintf("grouping mode %d is invalid", int(mode))
		return 0, makeError(ErrUnknownMode, str, nil)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(groupHeader); err != nil {
		return 0, err
	}

	var numStudents, group int
	for student := range roster.Students(mode) {
		if numStudents%size == 0 {
			group++
		}
		numStudents++

		record := []string{student.Name, student.RegNo,
			strconv.Itoa(group)}
		if err := writer.Write(record); err != nil {
			return 0, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, err
	}

	log.Debugf("Assigned %d students to %d groups of up to %d (%v)",
		numStudents, group, size, mode)
	return group, nil
}

// SaveGroupsFile writes the groups produced by MakeGroups to the named file,
// replacing any existing file.
func SaveGroupsFile(path string, roster *Roster, size int, mode Mode) (int, error) {
	var numGroups int
	err := createFile(path, func(w io.Writer) error {
		var err error
		numGroups, err = MakeGroups(w, roster, size, mode)
		return err
	})
	if err != nil {
		return 0, err
	}
	log.Infof("Wrote %d groups to %s", numGroups, path)
	return numGroups, nil
}
