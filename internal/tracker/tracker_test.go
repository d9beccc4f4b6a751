package tracker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRecorder struct {
	mock.Mock
	mu      sync.Mutex
	minutes map[string]int
}

func newMockRecorder() *mockRecorder {
	return &mockRecorder{minutes: make(map[string]int)}
}

func (m *mockRecorder) AddTime(username, title string, minutes int) error {
	args := m.Called(username, title, minutes)
	if err := args.Error(0); err != nil {
		return err
	}
	m.mu.Lock()
	m.minutes[username+"/"+title] += minutes
	m.mu.Unlock()
	return nil
}

func (m *mockRecorder) total(username, title string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.minutes[username+"/"+title]
}

func TestRun_AddsOneMinutePerTick(t *testing.T) {
	rec := newMockRecorder()
	rec.On("AddTime", "alice", "Dune", 1).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan int)
	go func() {
		n, err := Run(ctx, rec, "alice", "Dune", 5*time.Millisecond)
		assert.NoError(t, err)
		done <- n
	}()

	assert.Eventually(t, func() bool { return rec.total("alice", "Dune") >= 3 }, time.Second, time.Millisecond)
	cancel()
	n := <-done

	assert.Equal(t, rec.total("alice", "Dune"), n)
	rec.AssertNotCalled(t, "AddTime", "alice", "Dune", 2)
}

func TestRun_StopsOnRecorderError(t *testing.T) {
	rec := newMockRecorder()
	boom := errors.New("entry removed")
	rec.On("AddTime", "alice", "Dune", 1).Return(boom)

	n, err := Run(context.Background(), rec, "alice", "Dune", time.Millisecond)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, n)
}

func TestTracker_StartStop(t *testing.T) {
	rec := newMockRecorder()
	rec.On("AddTime", "alice", "Dune", 0).Return(nil)
	rec.On("AddTime", "alice", "Dune", 1).Return(nil)

	tr := New(context.Background(), rec, 5*time.Millisecond)
	info, err := tr.Start("alice", "Dune")
	require.NoError(t, err)
	assert.Equal(t, "Dune", info.Title)

	assert.Eventually(t, func() bool {
		active, err := tr.Active("alice")
		return err == nil && active.Minutes >= 2
	}, time.Second, time.Millisecond)

	stopped, err := tr.Stop("alice")
	require.NoError(t, err)
	assert.Equal(t, rec.total("alice", "Dune"), stopped.Minutes)

	_, err = tr.Active("alice")
	assert.ErrorIs(t, err, ErrNoSession)
	_, err = tr.Stop("alice")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestTracker_StartRequiresEntry(t *testing.T) {
	rec := newMockRecorder()
	missing := errors.New("not in library")
	rec.On("AddTime", "alice", "Emma", 0).Return(missing)

	tr := New(context.Background(), rec, time.Millisecond)
	_, err := tr.Start("alice", "Emma")
	assert.ErrorIs(t, err, missing)

	_, err = tr.Active("alice")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestTracker_NewSessionReplacesOld(t *testing.T) {
	rec := newMockRecorder()
	rec.On("AddTime", "alice", mock.Anything, mock.Anything).Return(nil)

	tr := New(context.Background(), rec, 5*time.Millisecond)
	_, err := tr.Start("alice", "Dune")
	require.NoError(t, err)
	_, err = tr.Start("alice", "Emma")
	require.NoError(t, err)

	active, err := tr.Active("alice")
	require.NoError(t, err)
	assert.Equal(t, "Emma", active.Title)

	before := rec.total("alice", "Dune")
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, before, rec.total("alice", "Dune"), "replaced session no longer ticks")

	tr.StopAll()
	_, err = tr.Active("alice")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestTracker_SessionEndsWhenEntryDisappears(t *testing.T) {
	rec := newMockRecorder()
	rec.On("AddTime", "alice", "Dune", 0).Return(nil)
	rec.On("AddTime", "alice", "Dune", 1).Return(errors.New("gone"))

	tr := New(context.Background(), rec, time.Millisecond)
	_, err := tr.Start("alice", "Dune")
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, err := tr.Active("alice")
		return errors.Is(err, ErrNoSession)
	}, time.Second, time.Millisecond)
}
