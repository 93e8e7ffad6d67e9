package vaultcmd

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSecretLine(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"newline terminated", "postgres://u:p@db/tags\n", "postgres://u:p@db/tags"},
		{"crlf terminated", "postgres://u:p@db/tags\r\n", "postgres://u:p@db/tags"},
		{"eof without newline", "postgres://u:p@db/tags", "postgres://u:p@db/tags"},
		{"empty input", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := readSecretLine(strings.NewReader(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestReadSecretLinePropagatesRealErrors(t *testing.T) {
	_, err := readSecretLine(failingReader{})
	assert.EqualError(t, err, "tty gone")
}
