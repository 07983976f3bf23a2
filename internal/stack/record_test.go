package stack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecord(t *testing.T) {
	require.Equal(t,
		"github.com/raulgarciaph/jgrapht/internal/stack.TestRecord(record_test.go:12)",
		Record(0),
	)
}

func TestCallRecord(t *testing.T) {
	c := Call(0)
	record := c.Record()
	require.Contains(t, record, "internal/stack.TestCallRecord")
	require.Contains(t, record, "record_test.go:17")
}

func TestRecordInsideLambda(t *testing.T) {
	var record string
	func() {
		record = Record(0)
	}()
	require.Contains(t, record, "internal/stack.TestRecordInsideLambda.func1")
	require.Contains(t, record, "record_test.go:26")
}
