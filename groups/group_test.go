// Copyright (c) 2024 The btctreap developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package groups

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// readGroups parses the output of MakeGroups into its records, checking the
// header along the way.
func readGroups(t *testing.T, data []byte) [][]string {
	t.Helper()

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records)
	require.Equal(t, []string{"NAME", "REG NO", "GROUP"}, records[0])
	return records[1:]
}

func TestMakeGroupsAscending(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	numGroups, err := MakeGroups(&buf, newTestRoster(t, 1), 3,
		ModeAscending)
	require.NoError(t, err)
	require.Equal(t, 3, numGroups)

	want := "NAME,REG NO,GROUP\n" +
		"Otieno,SCT-001,1\n" +
		"Kamau,SCT-002,1\n" +
		"Mutua,SCT-003,1\n" +
		"Wanjiru,SCT-004,2\n" +
		"Njeri,SCT-005,2\n" +
		"Akinyi,SCT-006,2\n" +
		"Chebet,SCT-007,3\n"
	require.Equal(t, want, buf.String())
}

func TestMakeGroupsDescending(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	numGroups, err := MakeGroups(&buf, newTestRoster(t, 2), 4,
		ModeDescending)
	require.NoError(t, err)
	require.Equal(t, 2, numGroups)

	records := readGroups(t, buf.Bytes())
	require.Len(t, records, len(testStudents))
	require.Equal(t, []string{"Chebet", "SCT-007", "1"}, records[0])
	require.Equal(t, []string{"Wanjiru", "SCT-004", "1"}, records[3])
	require.Equal(t, []string{"Mutua", "SCT-003", "2"}, records[4])
	require.Equal(t, []string{"Otieno", "SCT-001", "2"}, records[6])
}

func TestMakeGroupsRandom(t *testing.T) {
	t.Parallel()

	for seed := uint64(0); seed < 8; seed++ {
		var buf bytes.Buffer
		numGroups, err := MakeGroups(&buf, newTestRoster(t, seed), 2,
			ModeRandom)
		require.NoError(t, err)
		require.Equal(t, 4, numGroups)

		// Every student appears once and the group sizes are 2, 2, 2
		// and 1 in that order.
		records := readGroups(t, buf.Bytes())
		require.Len(t, records, len(testStudents))
		seen := make(map[string]bool)
		sizes := make(map[int]int)
		for i, record := range records {
			require.False(t, seen[record[1]], "duplicate %v", record)
			seen[record[1]] = true

			group, err := strconv.Atoi(record[2])
			require.NoError(t, err)
			require.Equal(t, i/2+1, group)
			sizes[group]++
		}
		require.Equal(t, map[int]int{1: 2, 2: 2, 3: 2, 4: 1}, sizes)
	}
}

func TestMakeGroupsLargeSize(t *testing.T) {
	t.Parallel()

	// A group size above the roster size puts everyone in group 1.
	var buf bytes.Buffer
	numGroups, err := MakeGroups(&buf, newTestRoster(t, 3), 100,
		ModeAscending)
	require.NoError(t, err)
	require.Equal(t, 1, numGroups)
	for _, record := range readGroups(t, buf.Bytes()) {
		require.Equal(t, "1", record[2])
	}

	// An empty roster writes only the header.
	buf.Reset()
	numGroups, err = MakeGroups(&buf, NewRoster(nil), 5, ModeRandom)
	require.NoError(t, err)
	require.Equal(t, 0, numGroups)
	require.Equal(t, "NAME,REG NO,GROUP\n", buf.String())
}

func TestMakeGroupsErrors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	_, err := MakeGroups(&buf, newTestRoster(t, 4), 0, ModeAscending)
	require.ErrorIs(t, err, ErrInvalidGroupSize)

	_, err = MakeGroups(&buf, newTestRoster(t, 4), 3, Mode(42))
	require.ErrorIs(t, err, ErrUnknownMode)
	require.Zero(t, buf.Len())
}

func TestSaveGroupsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "grouped.csv")
	numGroups, err := SaveGroupsFile(path, newTestRoster(t, 5), 5,
		ModeAscending)
	require.NoError(t, err)
	require.Equal(t, 2, numGroups)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, readGroups(t, contents), len(testStudents))
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Mode
	}{
		{"random", ModeRandom},
		{"Ascending", ModeAscending},
		{"DESCENDING", ModeDescending},
	}
	for _, test := range tests {
		mode, err := ParseMode(test.in)
		require.NoError(t, err, test.in)
		require.Equal(t, test.want, mode, test.in)
		require.Equal(t, modeStrings[test.want], mode.String())
	}

	_, err := ParseMode("sideways")
	require.ErrorIs(t, err, ErrUnknownMode)
	require.Equal(t, "Unknown Mode (9)", Mode(9).String())
}
