package p0gen

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const expectedConstants = `000-007: 313c6532d658201a
008-015: 956d549917eac3c0
016-023: 083d4edaf496ee20
024-031: 0cb386eeab6965d2
032-039: 6f856ac36b7642e0
040-047: e81887430eb2f988
048-055: aed89bd9076d6e8b
056-063: abe63903dd74dfbb
064-071: 1add4c445f6c7432
072-079: d1d113667136bbcc
080-087: cbf0b33854f1a287
088-095: 37e6e010269e7e78
096-103: 9856a37486c20a3c
104-111: 5020a4e865c9be36
112-119: 1401db7b7dac82b8
120-127: 62cdab713371b069
`

const expectedSchedules = `ROT1 = [49, 1, 9, 13, 41, 59, 21, 23, 39, 5, 45, 3, 51, 63, 11, 57]
ROT2 = [43, 11, 41, 25, 51, 47, 35, 3, 21, 63, 9, 45, 49, 17, 55, 19]
ROT3 = [49, 63, 39, 61, 45, 37, 27, 41, 53, 21, 59, 55, 35, 33, 19, 29]
ROT4 = [11, 45, 59, 41, 33, 17, 49, 39, 15, 5, 27, 51, 57, 53, 47, 1]
rot1 is fine
rot2 is fine
rot3 is fine
rot4 is fine
`

func TestWriteConstants(t *testing.T) {
	c, err := DeriveConstants(DefaultConstantsSeed)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteConstants(&buf, c))
	assert.Equal(t, expectedConstants, buf.String())
}

func TestWriteConstantsPadding(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteConstants(&buf, Constants{1}))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, NumConstants)
	assert.Equal(t, "000-007: 0000000000000001", lines[0])
	assert.Equal(t, "008-015: 0000000000000000", lines[1])
}

func TestWriteSchedules(t *testing.T) {
	s := GenerateSchedules(DefaultScheduleSeed)
	var buf bytes.Buffer
	require.NoError(t, WriteSchedules(&buf, s[:]))
	assert.Equal(t, expectedSchedules, buf.String())
}

func TestWriteSchedulesReportsDuplicates(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSchedules(&buf, []Schedule{{1, 3, 5}, {1, 1, 3}}))
	assert.Equal(t, "ROT1 = [1, 3, 5]\nROT2 = [1, 1, 3]\nrot1 is fine\nrot2 has duplicates\n", buf.String())
}

func TestScheduleString(t *testing.T) {
	assert.Equal(t, "[]", Schedule{}.String())
	assert.Equal(t, "[7]", Schedule{7}.String())
	assert.Equal(t, "[1, 3, 5]", Schedule{1, 3, 5}.String())
}

type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWritersPropagateErrors(t *testing.T) {
	err := WriteConstants(failingWriter{}, RC)
	assert.ErrorIs(t, err, errWrite)

	err = WriteSchedules(failingWriter{}, []Schedule{ROT1})
	assert.ErrorIs(t, err, errWrite)
}
