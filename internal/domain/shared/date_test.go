package shared

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		d, err := ParseDate("2020-04-01")
		require.NoError(t, err)
		assert.Equal(t, NewDate(2020, time.April, 1), d)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := ParseDate("01/04/2020")
		assert.Error(t, err)
	})
}

func TestDate_Ordering(t *testing.T) {
	restriction := NewDate(2020, time.April, 1)

	assert.True(t, NewDate(2020, time.March, 31).Before(restriction))
	assert.False(t, restriction.Before(restriction))

	assert.True(t, restriction.OnOrAfter(restriction))
	assert.True(t, NewDate(2020, time.April, 2).OnOrAfter(restriction))
	assert.False(t, NewDate(2020, time.March, 31).OnOrAfter(restriction))
}

func TestDate_AddDays(t *testing.T) {
	d := NewDate(2020, time.April, 1)
	assert.Equal(t, NewDate(2020, time.March, 31), d.AddDays(-1))
	assert.Equal(t, NewDate(2020, time.April, 30), d.AddDays(29))
}

func TestDate_Comparable(t *testing.T) {
	// Dates built through different paths must compare equal with ==,
	// since the ledger uses them as exact-match filters.
	a := NewDate(2020, time.April, 1)
	b, err := ParseDate("2020-04-01")
	require.NoError(t, err)
	c := DateOf(time.Date(2020, time.April, 1, 23, 59, 59, 0, time.UTC))

	assert.True(t, a == b)
	assert.True(t, a == c)
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2020, time.April, 1)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2020-04-01"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, d, decoded)
}

func TestDate_IsZero(t *testing.T) {
	assert.True(t, Date{}.IsZero())
	assert.False(t, NewDate(2020, time.April, 1).IsZero())
}
