// Copyright (c) 2024 The btctreap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package groups

import (
	"errors"
	"fmt"
	"iter"
	"math/rand/v2"
	"strings"

	"github.com/btcsuite/btctreap/treap"
)

// Student is a single roster entry.  Students are ordered and identified by
// their registration number alone.
type Student struct {
	Name  string
	RegNo string
}

// String returns the student formatted for log output.
func (s Student) String() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.RegNo)
}

// compareStudents orders students by registration number.
func compareStudents(a, b Student) int {
	return strings.Compare(a.RegNo, b.RegNo)
}

// Roster is a set of students keyed by registration number.
type Roster struct {
	students *treap.Treap[Student]
}

// NewRoster returns an empty roster.  Priorities for the underlying treap are
// drawn from src, or from the process-wide random generator when src is nil.
// The shape of the treap, and therefore the order of the random grouping mode,
// is fully determined by src and the order students are added in.
func NewRoster(src rand.Source) *Roster {
	return &Roster{students: treap.NewFunc(compareStudents, src)}
}

// Add inserts the student.  An Error with the ErrDuplicateStudent code, which
// also matches treap.ErrDuplicateKey, is returned when a student with the same
// registration number is already on the roster.
func (r *Roster) Add(s Student) error {
	err := r.students.Insert(s)
	if errors.Is(err, treap.ErrDuplicateKey) {
		existing, _ := r.students.Search(s)
		str := fmt.Sprintf("registration number %q of %q is already "+
			"used by %q", s.RegNo, s.Name, existing.Name)
		return makeError(ErrDuplicateStudent, str, err)
	}
	if err != nil {
		return err
	}

	log.Tracef("Added %v", s)
	return nil
}

// Remove removes the student with the passed registration number.  Removing a
// registration number that is not on the roster does nothing.
func (r *Roster) Remove(regNo string) {
	r.students.Delete(Student{RegNo: regNo})
}

// Lookup returns the student with the passed registration number.
func (r *Roster) Lookup(regNo string) (Student, bool) {
	return r.students.Search(Student{RegNo: regNo})
}

// Len returns the number of students on the roster.
func (r *Roster) Len() int {
	return r.students.Len()
}

// First returns the student with the lowest registration number, that is, the
// one registered first.
func (r *Roster) First() (Student, bool) {
	return r.students.Min()
}

// Last returns the student with the highest registration number, that is, the
// one registered last.
func (r *Roster) Last() (Student, bool) {
	return r.students.Max()
}

// Height returns the height of the underlying treap.
func (r *Roster) Height() int {
	return r.students.Height()
}

// Split partitions the roster around the passed registration number.  The left
// roster receives the students with lower registration numbers and the right
// roster receives the rest, including the student holding regNo itself.  The
// roster is empty afterwards.
func (r *Roster) Split(regNo string) (*Roster, *Roster) {
	left, right := r.students.Split(Student{RegNo: regNo})
	log.Debugf("Split roster at %q into %d and %d students", regNo,
		left.Len(), right.Len())
	return &Roster{students: left}, &Roster{students: right}
}

// MergeRosters combines two rosters into a new one.  Every registration number
// on left must sort before every registration number on right, otherwise the
// treap.ErrInvalidMerge error is returned and neither roster is modified.  Both
// rosters are empty after a successful merge.
func MergeRosters(left, right *Roster) (*Roster, error) {
	merged, err := treap.Merge(left.students, right.students)
	if err != nil {
		return nil, err
	}
	log.Debugf("Merged rosters into %d students", merged.Len())
	return &Roster{students: merged}, nil
}

// Students returns a sequence of the students in the order selected by mode.
func (r *Roster) Students(mode Mode) iter.Seq[Student] {
	switch mode {
	case ModeAscending:
		return r.students.All()
	case ModeDescending:
		return r.students.Backward()
	default:
		return r.students.PreOrder()
	}
}
