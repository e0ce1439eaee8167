package form

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/validator"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(validator.Default(), time.Hour)
	t.Cleanup(s.Close)
	return s
}

func TestStoreCreateAndDo(t *testing.T) {
	s := newTestStore(t)

	id, view := s.Create()
	require.NotEmpty(t, id)
	assert.Equal(t, Idle, view.State)
	assert.Equal(t, 1, s.Len())

	view, err := s.Do(id, func(f *Form) error {
		if err := f.SetLength("5"); err != nil {
			return err
		}
		_, err := f.Submit(crypto.NewGenerator(nil))
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, Shown, view.State)
	assert.Len(t, view.Password, 5)

	view, err = s.Do(id, nil)
	require.NoError(t, err)
	assert.Equal(t, Shown, view.State)
}

func TestStoreDoReturnsViewOnError(t *testing.T) {
	s := newTestStore(t)
	id, _ := s.Create()

	boom := errors.New("boom")
	view, err := s.Do(id, func(f *Form) error {
		_ = f.SetLength("7")
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "7", view.Options.Length)
}

func TestStoreUnknownForm(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Do("missing", nil)
	assert.ErrorIs(t, err, ErrFormNotFound)
	assert.ErrorIs(t, s.Delete("missing"), ErrFormNotFound)
}

func TestStoreDelete(t *testing.T) {
	s := newTestStore(t)
	id, _ := s.Create()

	require.NoError(t, s.Delete(id))
	assert.Equal(t, 0, s.Len())
	_, err := s.Do(id, nil)
	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestStoreEvictsIdleForms(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.mu.Lock()
	s.now = func() time.Time { return base }
	s.mu.Unlock()

	stale, _ := s.Create()
	fresh, _ := s.Create()

	s.mu.Lock()
	s.now = func() time.Time { return base.Add(45 * time.Minute) }
	s.mu.Unlock()
	_, err := s.Do(fresh, nil)
	require.NoError(t, err)

	s.mu.Lock()
	s.now = func() time.Time { return base.Add(90 * time.Minute) }
	s.mu.Unlock()

	assert.Equal(t, 1, s.evictExpired())
	_, err = s.Do(stale, nil)
	assert.ErrorIs(t, err, ErrFormNotFound)
	_, err = s.Do(fresh, nil)
	assert.NoError(t, err)
}

func TestStoreCloseIsIdempotent(t *testing.T) {
	s := NewStore(validator.Default(), time.Minute)
	s.Close()
	s.Close()
}
