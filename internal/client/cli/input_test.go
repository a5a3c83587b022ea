package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hello world \n"), "Name", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name", &out)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetRawText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetRawText(rdr("  Abc 1! \r\n"), "Password", &out)
	require.NoError(t, err)
	assert.Equal(t, "  Abc 1! ", got)

	got, err = GetRawText(rdr(" last"), "Password", &out)
	require.NoError(t, err)
	assert.Equal(t, " last", got)

	_, err = GetRawText(rdr(""), "Password", &out)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetPassword(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })

	var gotFd int
	readPassword = func(fd int) ([]byte, error) {
		gotFd = fd
		return []byte("Passw0rd!"), nil
	}

	var out bytes.Buffer
	pw, err := GetPassword(7, "Password", &out)
	require.NoError(t, err)
	assert.Equal(t, "Passw0rd!", string(pw))
	assert.Equal(t, 7, gotFd)
	assert.Equal(t, "Password\n> \n", out.String())
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}

	var out bytes.Buffer
	_, err := GetPassword(0, "Password", &out)
	require.Error(t, err)
}
