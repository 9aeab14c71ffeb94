package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnum_NameRoundTrip(t *testing.T) {
	for e, name := range enumNames {
		got, ok := EnumByName(name)
		require.True(t, ok, "name %q not resolvable", name)
		require.Equal(t, e, got)
		require.Equal(t, name, e.String())
	}
}

func TestEnum_Known(t *testing.T) {
	require.True(t, ITime.Known())
	require.True(t, IOS.Known())
	require.False(t, Enum(0).Known())
	require.False(t, Enum(98).Known())
	require.False(t, Enum(-12345).Known())
}

func TestEnum_StringUnknown(t *testing.T) {
	require.Equal(t, "unknown(99)", Enum(99).String())
}

func TestEnumByName_Unknown(t *testing.T) {
	_, ok := EnumByName("not-a-code")
	require.False(t, ok)
}

func TestVersion(t *testing.T) {
	require.True(t, V6.Valid())
	require.True(t, V7.Valid())
	require.False(t, Version(5).Valid())
	require.False(t, Version(0).Valid())

	require.False(t, V6.HasFooter())
	require.True(t, V7.HasFooter())
}

func TestFieldKind_String(t *testing.T) {
	tests := []struct {
		kind FieldKind
		want string
	}{
		{KindFloat, "float"},
		{KindInteger, "integer"},
		{KindEnum, "enumerated"},
		{KindLogical, "logical"},
		{KindAlpha, "alphanumeric"},
		{KindDouble, "double"},
		{FieldKind(0xFF), "unknown"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.kind.String())
	}
}
