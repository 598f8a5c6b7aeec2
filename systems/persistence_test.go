package systems

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	items   map[string][]byte
	saveErr error
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = data
	return nil
}

func useStore(t *testing.T, s itemStore) {
	t.Helper()
	prev := store
	store = s
	t.Cleanup(func() { store = prev })
}

func TestAnchorRoundTrip(t *testing.T) {
	useStore(t, &memStore{items: map[string][]byte{}})

	saved, err := LoadAnchor()
	require.NoError(t, err)
	assert.Nil(t, saved, "nothing saved yet")

	want := SavedAnchor{ImageSrc: "hero.png", AnchorX: 1190, AnchorY: 640}
	require.NoError(t, SaveAnchor(want))

	saved, err = LoadAnchor()
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, want, *saved)
}

func TestLoadAnchorCorrupt(t *testing.T) {
	useStore(t, &memStore{items: map[string][]byte{anchorItem: []byte("{not json")}})

	saved, err := LoadAnchor()
	assert.Error(t, err)
	assert.Nil(t, saved)
}

func TestSaveAnchorError(t *testing.T) {
	boom := errors.New("disk full")
	useStore(t, &memStore{items: map[string][]byte{}, saveErr: boom})

	assert.ErrorIs(t, SaveAnchor(SavedAnchor{AnchorX: 1}), boom)
}

func TestPersistenceDisabled(t *testing.T) {
	useStore(t, nil)

	saved, err := LoadAnchor()
	assert.NoError(t, err)
	assert.Nil(t, saved)
	assert.NoError(t, SaveAnchor(SavedAnchor{AnchorX: 1}))
}
