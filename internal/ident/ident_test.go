package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValid(t *testing.T) {
	cases := []string{"a", "Transaction", "field_name", "A1", "x_2_y"}
	for _, s := range cases {
		id, err := New(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, id.String())
	}
}

func TestNewInvalid(t *testing.T) {
	cases := map[string]Reason{
		"":                ReasonEmpty,
		"1abc":            ReasonNonAlphabetic,
		"_abc":            ReasonNonAlphabetic,
		"ab-cd":           ReasonInvalidChar,
		"has space":       ReasonInvalidChar,
		string(make([]byte, 33)): ReasonLengthOutOfRange, // NUL bytes, but the length check fires first
	}
	for s, wantReason := range cases {
		_, err := New(s)
		require.Error(t, err, s)
		var ie *InvalidIdentError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, wantReason, ie.Reason, s)
	}
}

func TestNewLengthBounds(t *testing.T) {
	ok := make([]byte, MaxLen)
	ok[0] = 'a'
	for i := 1; i < len(ok); i++ {
		ok[i] = 'b'
	}
	_, err := New(string(ok))
	require.NoError(t, err)

	tooLong := make([]byte, MaxLen+1)
	tooLong[0] = 'a'
	for i := 1; i < len(tooLong); i++ {
		tooLong[i] = 'b'
	}
	_, err = New(string(tooLong))
	require.Error(t, err)
}

func TestAutoFromHex(t *testing.T) {
	id := AutoFromHex("deadbeefcafebabe")
	assert.Equal(t, Ident("AutoDEADBEEF"), id)
}
