package services

import (
	"context"
	"errors"
	"os"
	"testing"

	"keystrokes/internal/catalog"
	"keystrokes/internal/domain"
	"keystrokes/internal/logging"
)

func TestMain(m *testing.M) {
	// Logging is package-global; tests run with the discard handler
	if _, err := logging.Initialize(false, "", 0); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// fakeStore is an in-memory PreferenceStore with injectable failures
type fakeStore struct {
	values  map[string]string
	failGet bool
	failSet bool
	failDel bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: make(map[string]string)}
}

func (f *fakeStore) Get(_ context.Context, key string) (string, bool, error) {
	if f.failGet {
		return "", false, errors.New("injected get failure")
	}
	value, ok := f.values[key]
	return value, ok, nil
}

func (f *fakeStore) Set(_ context.Context, key, value string) error {
	if f.failSet {
		return errors.New("injected set failure")
	}
	f.values[key] = value
	return nil
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	if f.failDel {
		return errors.New("injected delete failure")
	}
	delete(f.values, key)
	return nil
}

func (f *fakeStore) Close() error { return nil }

// fakeSignal is a scripted ColorSchemeSignal
type fakeSignal struct {
	scheme      domain.ColorScheme
	subscriber  func(domain.ColorScheme)
	subscribers int
	cancels     int
}

func (f *fakeSignal) Current() domain.ColorScheme {
	return f.scheme
}

func (f *fakeSignal) Subscribe(onChange func(domain.ColorScheme)) func() {
	f.subscriber = onChange
	f.subscribers++
	return func() {
		f.cancels++
		f.subscriber = nil
	}
}

// emit simulates a host scheme change
func (f *fakeSignal) emit(scheme domain.ColorScheme) {
	f.scheme = scheme
	if f.subscriber != nil {
		f.subscriber(scheme)
	}
}

func loadTestIndex(t *testing.T) *catalog.Index {
	t.Helper()
	idx, err := catalog.Load()
	if err != nil {
		t.Fatalf("failed to load catalogue: %v", err)
	}
	return idx
}
