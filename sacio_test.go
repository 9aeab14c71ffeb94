package sacio

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sacio/endian"
	"github.com/arloliu/sacio/format"
	"github.com/arloliu/sacio/sac"
)

// TestNew verifies the default file settings
func TestNew(t *testing.T) {
	f, err := New()
	require.NoError(t, err)
	require.Equal(t, format.V7, f.Version())
	require.True(t, endian.IsLittle(f.Engine()))
}

func TestNewWithOptions(t *testing.T) {
	f, err := New(sac.WithVersion(format.V6), sac.WithBigEndian())
	require.NoError(t, err)
	require.Equal(t, format.V6, f.Version())
	require.False(t, endian.IsLittle(f.Engine()))
}

// TestWriteReadRoundTrip verifies a file built through the facade survives
// a trip through disk
func TestWriteReadRoundTrip(t *testing.T) {
	f, err := New()
	require.NoError(t, err)

	require.NoError(t, f.Set("delta", 0.25))
	require.NoError(t, f.Set("b", 0.0))
	require.NoError(t, f.Set("e", 0.75))
	require.NoError(t, f.Set("iftype", "itime"))
	require.NoError(t, f.Set("leven", true))
	require.NoError(t, f.Set("npts", 4))
	require.NoError(t, f.Set("kstnm", "ANMO"))
	f.Data = []float32{1, 2, 3, 4}

	path := filepath.Join(t.TempDir(), "roundtrip.sac")
	require.NoError(t, Write(f, path))

	got, err := Read(path)
	require.NoError(t, err)
	require.Equal(t, f.Data, got.Data)

	kstnm, err := got.Get("kstnm")
	require.NoError(t, err)
	require.Equal(t, "ANMO", kstnm.Str())
}

func TestReadBuffer(t *testing.T) {
	f, err := New()
	require.NoError(t, err)

	require.NoError(t, f.Set("delta", 1.0))
	require.NoError(t, f.Set("b", 0.0))
	require.NoError(t, f.Set("e", 1.0))
	require.NoError(t, f.Set("iftype", "itime"))
	require.NoError(t, f.Set("leven", true))
	require.NoError(t, f.Set("npts", 2))
	f.Data = []float32{-1, 1}

	buf, err := f.Encode()
	require.NoError(t, err)

	got, err := ReadBuffer(buf)
	require.NoError(t, err)
	require.Equal(t, []float32{-1, 1}, got.Data)
}
