package commands

import (
	"bytes"
	"encoding/base64"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunGenerateEncryptionKey(t *testing.T) {
	var buf bytes.Buffer

	err := RunGenerateEncryptionKey(&buf)
	require.NoError(t, err)

	output := strings.TrimSpace(buf.String())
	require.True(t, strings.HasPrefix(output, "ENCRYPTION_KEY="))

	quoted := strings.TrimPrefix(output, "ENCRYPTION_KEY=")
	encodedKey, err := strconv.Unquote(quoted)
	require.NoError(t, err)

	key, err := base64.StdEncoding.DecodeString(encodedKey)
	require.NoError(t, err)
	require.Len(t, key, 32)
}

func TestRunGenerateEncryptionKeyUnique(t *testing.T) {
	var first, second bytes.Buffer

	require.NoError(t, RunGenerateEncryptionKey(&first))
	require.NoError(t, RunGenerateEncryptionKey(&second))
	require.NotEqual(t, first.String(), second.String())
}
