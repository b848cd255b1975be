package stacksat128

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type vector struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

func loadVectors(t *testing.T) []vector {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", "vectors.json"))
	require.NoError(t, err)
	defer f.Close()

	var vectors []vector
	require.NoError(t, json.NewDecoder(f).Decode(&vectors))
	require.NotEmpty(t, vectors)
	return vectors
}

func TestVectors(t *testing.T) {
	for _, v := range loadVectors(t) {
		input, err := hex.DecodeString(v.Input)
		require.NoError(t, err)

		want, err := hex.DecodeString(v.Output)
		require.NoError(t, err)
		require.Len(t, want, Size)

		got := Sum256(input)
		require.Equal(t, hex.EncodeToString(want), hex.EncodeToString(got[:]))
	}
}
