package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSaveThenVerify(t *testing.T) {
	s := NewStore()
	s.Save("tok-1", "alice", time.Minute)

	owner, ok := s.Verify("tok-1")
	require.True(t, ok)
	assert.Equal(t, "alice", owner)
}

func TestStoreVerifyUnknown(t *testing.T) {
	s := NewStore()

	_, ok := s.Verify("never-saved")
	assert.False(t, ok)
}

func TestStoreLazyExpiry(t *testing.T) {
	s := NewStore()
	s.Save("tok-1", "alice", 20*time.Millisecond)

	time.Sleep(40 * time.Millisecond)

	_, ok := s.Verify("tok-1")
	require.False(t, ok)

	// the expired record must be gone, not just hidden
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.SweepExpired())

	_, ok = s.Verify("tok-1")
	assert.False(t, ok)
}

func TestStoreSaveOverwrites(t *testing.T) {
	s := NewStore()
	s.Save("tok-1", "alice", time.Minute)
	s.Save("tok-1", "bob", time.Minute)

	owner, ok := s.Verify("tok-1")
	require.True(t, ok)
	assert.Equal(t, "bob", owner)
	assert.Equal(t, 1, s.Len())
}

func TestStoreRevokeIdempotent(t *testing.T) {
	s := NewStore()
	s.Save("tok-1", "alice", time.Minute)

	s.Revoke("tok-1")
	_, ok := s.Verify("tok-1")
	assert.False(t, ok)

	// second revoke is a no-op, not an error
	s.Revoke("tok-1")
	s.Revoke("never-saved")
	assert.Equal(t, 0, s.Len())
}

func TestStoreRevokeAll(t *testing.T) {
	s := NewStore()
	for i := 0; i < 3; i++ {
		s.Save(fmt.Sprintf("alice-%d", i), "alice", time.Minute)
	}
	s.Save("bob-0", "bob", time.Minute)

	s.RevokeAll("alice")

	for i := 0; i < 3; i++ {
		_, ok := s.Verify(fmt.Sprintf("alice-%d", i))
		assert.False(t, ok)
	}

	owner, ok := s.Verify("bob-0")
	require.True(t, ok)
	assert.Equal(t, "bob", owner)
}

func TestStoreSweepExpired(t *testing.T) {
	s := NewStore()
	s.Save("short-1", "alice", 20*time.Millisecond)
	s.Save("short-2", "bob", 20*time.Millisecond)
	s.Save("long-1", "alice", time.Minute)

	time.Sleep(40 * time.Millisecond)

	assert.Equal(t, 2, s.SweepExpired())
	assert.Equal(t, 1, s.Len())

	owner, ok := s.Verify("long-1")
	require.True(t, ok)
	assert.Equal(t, "alice", owner)
}
