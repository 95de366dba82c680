// Copyright (c) 2024 The btctreap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package groups

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
)

const (
	// rosterFileExt is the extension every roster file must have.
	rosterFileExt = ".csv"

	// rosterFields is the number of columns in a roster record.
	rosterFields = 2
)

// rosterHeader is the header row written to roster files.
var rosterHeader = []string{"NAME", "REG NO"}

// ReadRoster builds a roster from CSV records of the form name,regno.  The
// first record is a header and is skipped.  Surrounding whitespace is trimmed
// from both fields.  An Error with the ErrInvalidShape code is returned for a
// record without exactly two fields, and one with the ErrDuplicateStudent code
// for a repeated registration number.
func ReadRoster(r io.Reader, src rand.Source) (*Roster, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	roster := NewRoster(src)
	for lineNum := 1; ; lineNum++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("unable to read roster: %w", err)
		}

		if len(record) != rosterFields {
			str := fmt.Sprintf("record %d has %d fields, want %d "+
				"(name and registration number)", lineNum,
				len(record), rosterFields)
			return nil, makeError(ErrInvalidShape, str, nil)
		}

		// Skip the header.
		if lineNum == 1 {
			continue
		}

		student := Student{
			Name:  strings.TrimSpace(record[0]),
			RegNo: strings.TrimSpace(record[1]),
		}
		if err := roster.Add(student); err != nil {
			return nil, fmt.Errorf("record %d: %w", lineNum, err)
		}
	}

	log.Debugf("Read roster of %d students", roster.Len())
	return roster, nil
}

// LoadRosterFile reads the roster stored in the named file.  The file must have
// the .csv extension, otherwise an Error with the ErrInvalidFile code is
// returned without opening it.
func LoadRosterFile(path string, src rand.Source) (*Roster, error) {
	if !strings.EqualFold(filepath.Ext(path), rosterFileExt) {
		str := fmt.Sprintf("roster file %q must have the %s extension",
			path, rosterFileExt)
		return nil, makeError(ErrInvalidFile, str, nil)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	log.Infof("Loading roster from %s", path)
	roster, err := ReadRoster(f, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return roster, nil
}

// WriteRoster writes the roster as CSV records of the form name,regno in
// ascending registration number order, preceded by a header.
func WriteRoster(w io.Writer, roster *Roster) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(rosterHeader); err != nil {
		return err
	}
	for student := range roster.Students(ModeAscending) {
		err := writer.Write([]string{student.Name, student.RegNo})
		if err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// createFile runs fn with a newly created file at the named path and closes
// it, reporting the first error encountered.
func createFile(path string, fn func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// SaveRosterFile writes the roster to the named file, replacing any existing
// file.
func SaveRosterFile(path string, roster *Roster) error {
	log.Infof("Writing %d students to %s", roster.Len(), path)
	return createFile(path, func(w io.Writer) error {
		return WriteRoster(w, roster)
	})
}
