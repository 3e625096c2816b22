package models

import (
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateShapes(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-02-10", "10/02/2024"},
		{"10/02/2024", "10/02/2024"},
		{"2024-2-3", "03/02/2024"},
		{"3/2/2024", "03/02/2024"},
		{"2024-02-10T00:00:00Z", "10/02/2024"},
		{"2024-02-10T23:59:59-00:00", "10/02/2024"},
	}
	for _, tc := range cases {
		d, err := ParseDate(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, d.String(), tc.in)
	}
}

func TestParseDateSameDayBothDelimiters(t *testing.T) {
	dash, err := ParseDate("2024-02-10")
	require.NoError(t, err)
	slash, err := ParseDate("10/02/2024")
	require.NoError(t, err)
	assert.Equal(t, dash, slash)
}

func TestParseDateEpochSeconds(t *testing.T) {
	instant := time.Date(2024, time.February, 10, 15, 4, 5, 0, time.UTC)
	d, err := ParseDate(strconv.FormatInt(instant.Unix(), 10))
	require.NoError(t, err)
	assert.Equal(t, "10/02/2024", d.String())
}

func TestParseDateEmptyMeansNoDate(t *testing.T) {
	d, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())
	assert.Equal(t, "", d.String())

	d, err = ParseDate("   ")
	require.NoError(t, err)
	assert.True(t, d.IsZero())
}

func TestParseDateInvalid(t *testing.T) {
	for _, in := range []string{"31/02/2024", "2024-13-01", "2024-02", "10/02", "foo", "a/b/c"} {
		_, err := ParseDate(in)
		require.ErrorIs(t, err, ErrInvalidDate, in)
	}
}

func TestDateRoundTrip(t *testing.T) {
	for _, in := range []string{"01/01/2000", "29/02/2024", "31/12/1999", "05/07/2031"} {
		d, err := ParseDate(in)
		require.NoError(t, err)
		back, err := ParseDate(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, back)
	}
}

func TestDateJSON(t *testing.T) {
	d, err := ParseDate("2024-02-10")
	require.NoError(t, err)
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"10/02/2024"`, string(b))

	var zero Date
	b, err = json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	var back Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-02-10"`), &back))
	assert.Equal(t, d, back)
	require.NoError(t, json.Unmarshal([]byte("null"), &back))
	assert.True(t, back.IsZero())
}

func TestDateOrdering(t *testing.T) {
	early, _ := ParseDate("10/02/2024")
	late, _ := ParseDate("11/02/2024")
	assert.True(t, early.Before(late))
	assert.True(t, late.After(early))
	assert.False(t, early.Before(early))
}
