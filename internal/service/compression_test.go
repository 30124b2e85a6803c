package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompress_RoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("synchronize me "), 1000)

	compressed, err := compress(data)
	require.NoError(t, err)
	assert.Less(t, len(compressed), len(data))

	out, err := decompress(compressed)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestDecompress_RejectsGarbage(t *testing.T) {
	_, err := decompress([]byte("definitely not gzip"))
	assert.Error(t, err)
}

func TestCompressionRatio(t *testing.T) {
	assert.Zero(t, compressionRatio(0, 10))
	assert.InDelta(t, 0.25, compressionRatio(400, 100), 1e-9)
}
