package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func testPayload() []byte {
	// Repetitive enough that every codec actually shrinks it.
	return bytes.Repeat([]byte("SAC waveform sample block "), 256)
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := testPayload()

	for _, container := range []ContainerType{
		ContainerNone, ContainerZstd, ContainerS2, ContainerLZ4, ContainerGzip,
	} {
		t.Run(container.String(), func(t *testing.T) {
			codec, err := GetCodec(container)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, restored)

			if container != ContainerNone {
				require.Less(t, len(compressed), len(payload))
			}
		})
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, container := range []ContainerType{
		ContainerZstd, ContainerS2, ContainerLZ4, ContainerGzip,
	} {
		codec, err := GetCodec(container)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		restored, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, restored)
	}
}

func TestGetCodec_Unknown(t *testing.T) {
	_, err := GetCodec(ContainerType(0xFF))
	require.Error(t, err)
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path      string
		container bool
	}{
		{"waveform.sac", false},
		{"waveform.SAC", false},
		{"waveform.sac.zst", true},
		{"waveform.sac.lz4", true},
		{"waveform.sac.s2", true},
		{"waveform.sac.gz", true},
		{"waveform.sac.GZ", true},
		{"waveform", false},
	}
	for _, tt := range tests {
		_, ok := ForPath(tt.path)
		require.Equal(t, tt.container, ok, "path %s", tt.path)
	}
}

func TestDecompress_Corrupt(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x01, 0x02, 0x03}

	for _, container := range []ContainerType{ContainerZstd, ContainerGzip} {
		codec, err := GetCodec(container)
		require.NoError(t, err)

		_, err = codec.Decompress(garbage)
		require.Error(t, err, "container %s", container)
	}
}
