package github

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	githubmock "github.com/m-zajac/ghcard/internal/adapter/github/mock"
	"github.com/m-zajac/ghcard/internal/app"
	"github.com/m-zajac/ghcard/internal/app/mock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() logrus.FieldLogger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}

func storedProfile(t *testing.T, created time.Time, p *app.RawProfile) map[string][]byte {
	t.Helper()

	data, err := json.Marshal(profileDBEntry{
		Created: created.Unix(),
		Data:    p,
	})
	require.NoError(t, err)

	return map[string][]byte{
		"profile/" + p.Login: data,
	}
}

func TestNewClientWithStaleDataInvalidTTL(t *testing.T) {
	_, err := NewClientWithStaleData(nil, githubmock.NewKVStore(nil), time.Minute, time.Hour, newTestLogger())
	assert.Error(t, err)
}

func TestClientWithStaleDataProfile(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profile := &app.RawProfile{Login: "octocat", Name: "The Octocat"}

	client := mock.NewMockProfileClient(ctrl)
	client.EXPECT().
		Profile(gomock.Any(), "octocat").
		Return(profile, nil)

	store := githubmock.NewKVStore(nil)
	staleDataClient, err := NewClientWithStaleData(client, store, time.Minute, time.Minute, newTestLogger())
	require.NoError(t, err)
	staleDataClient.RunScheduler()
	defer staleDataClient.Close()

	// Empty store, profile is fetched and saved.
	got, err := staleDataClient.Profile(context.Background(), "OctoCat")
	require.NoError(t, err)
	assert.Equal(t, profile, got)
	assert.Equal(t, 1, store.Updates())
	assert.NotNil(t, store.Get("profile/octocat"))

	// Fresh data in store, client isn't called again.
	got, err = staleDataClient.Profile(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, profile, got)
	assert.Equal(t, 2, store.Reads())
	assert.Equal(t, 1, store.Updates())
}

func TestClientWithStaleDataProfileExpired(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	old := &app.RawProfile{Login: "octocat", Name: "old"}
	fresh := &app.RawProfile{Login: "octocat", Name: "fresh"}

	client := mock.NewMockProfileClient(ctrl)
	client.EXPECT().
		Profile(gomock.Any(), "octocat").
		Return(fresh, nil)

	store := githubmock.NewKVStore(storedProfile(t, time.Now().Add(-2*time.Hour), old))
	staleDataClient, err := NewClientWithStaleData(client, store, time.Hour, time.Minute, newTestLogger())
	require.NoError(t, err)

	got, err := staleDataClient.Profile(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
	assert.Equal(t, 1, store.Updates())
}

func TestClientWithStaleDataProfileErrors(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mock.NewMockProfileClient(ctrl)
	client.EXPECT().
		Profile(gomock.Any(), "nobody").
		Return(nil, app.NotFoundError("not found"))

	store := githubmock.NewKVStore(nil)
	staleDataClient, err := NewClientWithStaleData(client, store, time.Minute, time.Minute, newTestLogger())
	require.NoError(t, err)

	_, err = staleDataClient.Profile(context.Background(), "nobody")
	assert.True(t, app.IsNotFoundError(err))
	assert.Equal(t, 0, store.Updates())

	failingClient, err := NewClientWithStaleData(client, githubmock.NewFailingKVStore(), time.Minute, time.Minute, newTestLogger())
	require.NoError(t, err)
	_, err = failingClient.Profile(context.Background(), "octocat")
	assert.Error(t, err)
}

// TestClientWithStaleDataScheduler checks every scheduler step one by one.
func TestClientWithStaleDataScheduler(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stale := &app.RawProfile{Login: "octocat", Name: "stale"}
	fresh := &app.RawProfile{Login: "octocat", Name: "fresh"}

	var clientCalls int64
	release := make(chan struct{})

	client := mock.NewMockProfileClient(ctrl)
	client.EXPECT().
		Profile(gomock.Any(), "octocat").
		DoAndReturn(func(ctx context.Context, login string) (*app.RawProfile, error) {
			select {
			case <-release:
			case <-time.After(time.Second):
				return nil, errors.New("client locked")
			}
			atomic.AddInt64(&clientCalls, 1)
			return fresh, nil
		}).
		AnyTimes()

	store := githubmock.NewKVStore(storedProfile(t, time.Now().Add(-2*time.Hour), stale))
	staleDataClient, err := NewClientWithStaleData(client, store, 8*time.Hour, time.Hour, newTestLogger())
	require.NoError(t, err)

	// Set special chan for blocking scheduler
	staleDataClient.schedulerPendingOps = make(chan int)
	staleDataClient.RunScheduler()
	defer staleDataClient.Close()

	nextState := func(step string) int {
		select {
		case n := <-staleDataClient.schedulerPendingOps:
			return n
		case <-time.After(time.Second):
			t.Fatalf("%s: scheduler locked", step)
		}
		return 0
	}

	assert.Equal(t, 0, nextState("init scheduler"))

	// Stale data is returned immediately, each call requests an update.
	for i := 0; i < 3; i++ {
		got, err := staleDataClient.Profile(context.Background(), "octocat")
		require.NoError(t, err)
		assert.Equal(t, stale, got)
	}

	assert.Equal(t, 1, nextState("first update scheduled"))
	assert.Equal(t, 1, nextState("duplicate update skipped"))
	assert.Equal(t, 1, nextState("duplicate update skipped"))
	assert.Equal(t, 0, store.Updates())

	close(release)
	assert.Equal(t, 0, nextState("update done"))

	assert.EqualValues(t, 1, atomic.LoadInt64(&clientCalls))
	assert.Equal(t, 1, store.Updates())

	var entry profileDBEntry
	require.NoError(t, json.Unmarshal(store.Get("profile/octocat"), &entry))
	assert.Equal(t, fresh, entry.Data)
}
