package reconcile_test

import (
	"testing"
	"time"

	"tracker/src/reconcile"

	"github.com/stretchr/testify/assert"
)

func TestCompareStamps(t *testing.T) {
	t.Run("strictly later stamp is greater", func(t *testing.T) {
		assert.Equal(t, 1, reconcile.CompareStamps("2024-01-02T00:00:00Z", "2024-01-01T00:00:00Z"))
		assert.Equal(t, -1, reconcile.CompareStamps("2024-01-01T00:00:00Z", "2024-01-02T00:00:00Z"))
	})

	t.Run("equal stamps compare equal", func(t *testing.T) {
		assert.Equal(t, 0, reconcile.CompareStamps("2024-01-01T00:00:00Z", "2024-01-01T00:00:00Z"))
	})

	t.Run("missing stamp sorts before any present stamp", func(t *testing.T) {
		assert.Equal(t, -1, reconcile.CompareStamps("", "2024-01-01T00:00:00Z"))
		assert.Equal(t, 1, reconcile.CompareStamps("2024-01-01T00:00:00Z", ""))
	})

	t.Run("both missing compare equal", func(t *testing.T) {
		assert.Equal(t, 0, reconcile.CompareStamps("", ""))
	})

	t.Run("date-only stamps are accepted", func(t *testing.T) {
		assert.Equal(t, 1, reconcile.CompareStamps("2024-02-01", "2024-01-31"))
		assert.Equal(t, 0, reconcile.CompareStamps("2024-02-01", "2024-02-01T00:00:00Z"))
	})

	t.Run("subsecond precision is respected", func(t *testing.T) {
		assert.Equal(t, 1, reconcile.CompareStamps("2024-01-01T00:00:00.500Z", "2024-01-01T00:00:00.100Z"))
	})

	t.Run("malformed stamp degrades to oldest instant", func(t *testing.T) {
		assert.Equal(t, -1, reconcile.CompareStamps("not-a-date", "2024-01-01T00:00:00Z"))
		assert.Equal(t, 1, reconcile.CompareStamps("2024-01-01T00:00:00Z", "not-a-date"))
		assert.Equal(t, 0, reconcile.CompareStamps("not-a-date", "also-not-a-date"))
	})
}

func TestParseStamp(t *testing.T) {
	t.Run("rfc3339", func(t *testing.T) {
		got := reconcile.ParseStamp("2024-03-15T10:30:00Z")
		assert.Equal(t, 2024, got.Year())
		assert.Equal(t, 10, got.Hour())
	})

	t.Run("malformed returns zero time", func(t *testing.T) {
		assert.True(t, reconcile.ParseStamp("garbage").IsZero())
	})
}

func TestCompareTimestamps(t *testing.T) {
	earlier := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	later := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	t.Run("present instants order chronologically", func(t *testing.T) {
		assert.Equal(t, 1, reconcile.CompareTimestamps(&later, &earlier))
		assert.Equal(t, -1, reconcile.CompareTimestamps(&earlier, &later))
		assert.Equal(t, 0, reconcile.CompareTimestamps(&earlier, &earlier))
	})

	t.Run("nil sorts before any present instant", func(t *testing.T) {
		assert.Equal(t, -1, reconcile.CompareTimestamps(nil, &earlier))
		assert.Equal(t, 1, reconcile.CompareTimestamps(&earlier, nil))
		assert.Equal(t, 0, reconcile.CompareTimestamps(nil, nil))
	})
}
