package timelog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZstdRoundTrip(t *testing.T) {
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)
	defer compressor.Close()

	payload := bytes.Repeat([]byte(`{"activity":"coding","hours":2}`), 200)

	compressed, err := compressor.Compress(payload)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(payload))

	restored, err := compressor.Decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, payload, restored)
}

func TestZstdDecompressGarbage(t *testing.T) {
	compressor, err := NewZstdCompressor()
	require.NoError(t, err)
	defer compressor.Close()

	_, err = compressor.Decompress([]byte("definitely not zstd"))
	assert.Error(t, err)
}
