package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxalign/internal/candidate"
)

var _ candidate.Store = (*Store)(nil)

func openMem(t *testing.T) *Store {
	t.Helper()

	s, err := Open(InMemoryConfig())
	require.NoError(t, err)

	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestStore_PutGet(t *testing.T) {
	s := openMem(t)

	want := &candidate.Result{
		Set:      candidate.Set{"s-dog": {"t-dog", "t-hotdog"}},
		Coverage: candidate.Coverage{TranslatedLemmas: 1, TotalLemmas: 2},
	}
	require.NoError(t, s.Put("candidates/abc", want))

	var got candidate.Result
	ok, err := s.Get("candidates/abc", &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want, &got)
}

func TestStore_Miss(t *testing.T) {
	s := openMem(t)

	var v map[string]int
	ok, err := s.Get("missing", &v)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_DecodeError(t *testing.T) {
	s := openMem(t)

	require.NoError(t, s.Put("k", "a string"))

	var v map[string]int
	_, err := s.Get("k", &v)
	require.Error(t, err)
}

func TestStore_DeleteAndKeys(t *testing.T) {
	s := openMem(t)

	require.NoError(t, s.Put("candidates/b", 1))
	require.NoError(t, s.Put("candidates/a", 2))
	require.NoError(t, s.Put("other/c", 3))

	keys, err := s.Keys("candidates/")
	require.NoError(t, err)
	assert.Equal(t, []string{"candidates/a", "candidates/b"}, keys)

	require.NoError(t, s.Delete("candidates/a"))
	require.NoError(t, s.Delete("never-stored"))

	keys, err = s.Keys("candidates/")
	require.NoError(t, err)
	assert.Equal(t, []string{"candidates/b"}, keys)
}

func TestStore_Persistent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Path = t.TempDir()

	s, err := Open(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Put("k", []string{"x"}))
	require.NoError(t, s.Close())

	s, err = Open(cfg)
	require.NoError(t, err)

	defer s.Close()

	var v []string
	ok, err := s.Get("k", &v)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"x"}, v)
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open(Config{})
	require.Error(t, err)
}
