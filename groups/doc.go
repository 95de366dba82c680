// Copyright (c) 2024 The btctreap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package groups divides a roster of students into fixed-size groups.

A roster is read from CSV records of the form name,regno and held in a treap
keyed by registration number, so a registration number that appears twice is
detected while loading.  Groups are then formed by walking the treap in one of
three orders: ascending or descending registration number, or the pre-order of
the treap, which is shuffled by the random node priorities.

Rosters can also be split around a registration number and merged back
together, which moves the students between rosters without copying them.
*/
package groups
