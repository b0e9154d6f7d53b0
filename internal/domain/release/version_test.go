package release

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestVersionInfo_String covers all four presence combinations of the composition table.
func TestVersionInfo_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		info VersionInfo
		want string
	}{
		{
			name: "base only",
			info: VersionInfo{Base: "1.15.0"},
			want: "1.15.0",
		},
		{
			name: "base and prerelease",
			info: VersionInfo{Base: "1.15.0", Prerelease: "rc1"},
			want: "1.15.0-rc1",
		},
		{
			name: "base and metadata",
			info: VersionInfo{Base: "1.15.0", Metadata: "ent"},
			want: "1.15.0+ent",
		},
		{
			name: "all fields",
			info: VersionInfo{Base: "1.15.0", Prerelease: "rc1", Metadata: "ent"},
			want: "1.15.0-rc1+ent",
		},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, tc.info.String())
		})
	}
}

// TestResolve_OverridePrecedence checks that non-empty overrides win per field independently.
func TestResolve_OverridePrecedence(t *testing.T) {
	t.Parallel()

	src := SourceValues{
		Base:       "1.15.0",
		Prerelease: "beta",
		Metadata:   "ce",
	}

	// All overrides set.
	got := Resolve(Overrides{Base: "2.0.0", Prerelease: "rc1", Metadata: "ent"}, src)
	require.Equal(t, VersionInfo{Base: "2.0.0", Prerelease: "rc1", Metadata: "ent"}, got)

	// Base override only, other fields fall back to the file.
	got = Resolve(Overrides{Base: "2.0.0"}, src)
	require.Equal(t, VersionInfo{Base: "2.0.0", Prerelease: "beta", Metadata: "ce"}, got)

	// Prerelease override only.
	got = Resolve(Overrides{Prerelease: "rc2"}, src)
	require.Equal(t, VersionInfo{Base: "1.15.0", Prerelease: "rc2", Metadata: "ce"}, got)

	// Metadata override only.
	got = Resolve(Overrides{Metadata: "fips"}, src)
	require.Equal(t, VersionInfo{Base: "1.15.0", Prerelease: "beta", Metadata: "fips"}, got)
}

// TestResolve_MetadataSentinel ensures the "oss" override behaves exactly like an unset one.
func TestResolve_MetadataSentinel(t *testing.T) {
	t.Parallel()

	src := SourceValues{Base: "1.15.0", Metadata: "ce"}

	withSentinel := Resolve(Overrides{Metadata: MetadataOSS}, src)
	withoutOverride := Resolve(Overrides{}, src)

	require.Equal(t, withoutOverride, withSentinel)
	require.Equal(t, "ce", withSentinel.Metadata)

	// Sentinel with no file value resolves to empty, not to "oss".
	got := Resolve(Overrides{Metadata: MetadataOSS}, SourceValues{Base: "1.15.0"})
	require.Empty(t, got.Metadata)
}

// TestResolve_EmptyEverything documents the silent degradation with no override and no file.
func TestResolve_EmptyEverything(t *testing.T) {
	t.Parallel()

	got := Resolve(Overrides{}, SourceValues{})
	require.Equal(t, VersionInfo{}, got)
	require.Empty(t, got.String())
}

func TestOverrides_Complete(t *testing.T) {
	t.Parallel()

	require.True(t, Overrides{Base: "1.15.0", Prerelease: "rc1", Metadata: "ent"}.Complete())
	require.False(t, Overrides{Base: "1.15.0", Prerelease: "rc1"}.Complete())
	require.False(t, Overrides{Base: "1.15.0", Prerelease: "rc1", Metadata: MetadataOSS}.Complete())
	require.False(t, Overrides{}.Complete())
}
