package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want []string
	}{
		{"nil", nil, nil},
		{"string slice passes through", []string{"a", "b"}, []string{"a", "b"}},
		{"any slice of strings", []any{"1st Year", "2nd Year"}, []string{"1st Year", "2nd Year"}},
		{"json encoded array", `["BSIT 1A-1st Year","BSIT 1B-1st Year"]`, []string{"BSIT 1A-1st Year", "BSIT 1B-1st Year"}},
		{"empty string", "", nil},
		{"whitespace string", "   ", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := StringList(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStringListErrors(t *testing.T) {
	_, err := StringList([]any{"ok", 42})
	assert.Error(t, err)

	_, err = StringList("not json")
	assert.Error(t, err)

	_, err = StringList(map[string]string{"a": "b"})
	assert.Error(t, err)
}
