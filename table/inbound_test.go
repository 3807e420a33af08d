package table

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshkit/wiretab/format"
)

func TestNewInbound_EmptyBeforeFlip(t *testing.T) {
	in := NewInbound[string](format.TableIdentity, nil)

	require.Equal(t, VersionNone, in.ActiveVersion())
	require.Equal(t, 0, in.ActiveSize())

	_, ok := in.Decompress(0)
	require.False(t, ok)
}

func TestInbound_FlipThenDecompress(t *testing.T) {
	in := NewInbound[string](format.TableIdentity, nil)

	in.Flip(5, []string{"remote/alpha", "remote/beta"})

	value, ok := in.Decompress(0)
	require.True(t, ok)
	require.Equal(t, "remote/alpha", value)

	value, ok = in.Decompress(1)
	require.True(t, ok)
	require.Equal(t, "remote/beta", value)

	_, ok = in.Decompress(2)
	require.False(t, ok, "out-of-range code must miss")

	_, ok = in.Decompress(NotCompressed)
	require.False(t, ok, "the sentinel must never decode")

	require.Equal(t, Version(5), in.ActiveVersion())
	require.Equal(t, 2, in.ActiveSize())
}

func TestInbound_DuplicateAndStaleIgnored(t *testing.T) {
	events := &recordingEvents{}
	in := NewInbound[string](format.TableManifest, events)

	in.Flip(5, []string{"a"})
	in.Flip(5, []string{"x"})
	in.Flip(2, []string{"y", "z"})

	value, ok := in.Decompress(0)
	require.True(t, ok)
	require.Equal(t, "a", value)
	require.Equal(t, Version(5), in.ActiveVersion())
	require.Equal(t, []Version{5}, events.duplicates)
	require.Equal(t, [][2]Version{{5, 2}}, events.stale)
}

func TestInbound_FlipCopiesValues(t *testing.T) {
	in := NewInbound[string](format.TableIdentity, nil)

	values := []string{"a", "b"}
	in.Flip(1, values)
	values[0] = "mutated"

	value, ok := in.Decompress(0)
	require.True(t, ok)
	require.Equal(t, "a", value, "holder must own its snapshot")
}

func TestNewIdentityInbound_Seed(t *testing.T) {
	in := NewIdentityInbound("local/noop", nil)

	value, ok := in.Decompress(NoOpIdentityCode)
	require.True(t, ok)
	require.Equal(t, "local/noop", value)
	require.Equal(t, Version(0), in.ActiveVersion())
	require.Equal(t, format.TableIdentity, in.Kind())
}

func TestNewManifestInbound_Seed(t *testing.T) {
	in := NewManifestInbound[string](nil)

	require.Equal(t, Version(0), in.ActiveVersion())
	require.Equal(t, 0, in.ActiveSize())
	require.Equal(t, format.TableManifest, in.Kind())

	_, ok := in.Decompress(0)
	require.False(t, ok)
}

func TestInbound_String(t *testing.T) {
	in := NewInbound[string](format.TableManifest, nil)
	require.Equal(t, "InboundCompressionTable(kind=Manifest, version=-1, size=0)", in.String())

	in.Flip(2, []string{"a", "b", "c"})
	require.Equal(t, "InboundCompressionTable(kind=Manifest, version=2, size=3)", in.String())
}

func TestInbound_ConcurrentFlipsConvergeOnHighestVersion(t *testing.T) {
	const flippers = 32

	in := NewInbound[int](format.TableManifest, nil)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for _, v := range rand.Perm(flippers) {
		wg.Add(1)
		go func(v Version) {
			defer wg.Done()
			<-start
			in.Flip(v, []int{int(v)})
		}(Version(v + 1))
	}

	close(start)
	wg.Wait()

	require.Equal(t, Version(flippers), in.ActiveVersion())
	value, ok := in.Decompress(0)
	require.True(t, ok)
	require.Equal(t, flippers, value)
}
