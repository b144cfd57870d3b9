package github

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/m-zajac/ghcard/internal/app"
	"github.com/sirupsen/logrus"
)

// KVStore provides simple kv data storage
type KVStore interface {
	ReadKey(key []byte) ([]byte, error)
	UpdateKey(key []byte, data []byte) error
}

// ClientWithStaleData wraps ProfileClient and returns data saved in db if possible.
//
// If data is not available (or datas ttl is exceeded), profile is fetched with wrapped client and saved.
// If data is available, ttl is ok, but refreshTTL is exceeded, update job is scheduled. Exisiting data is returned immediately.
// If data is available and no ttl is exceeded, then data is returned immediately.
type ClientWithStaleData struct {
	client         app.ProfileClient
	store          KVStore
	ttl            time.Duration
	refreshTTL     time.Duration
	refreshTimeout time.Duration
	l              logrus.FieldLogger

	profileUpdates chan profileDBUpdateRequest

	// Chan for controlling scheduler - only used for unit testing.
	schedulerPendingOps chan int

	// Func for canceling internal worker loop
	stop func()
}

var _ app.ProfileClient = &ClientWithStaleData{}

// NewClientWithStaleData creates new ClientWithStaleData instance.
func NewClientWithStaleData(
	client app.ProfileClient,
	store KVStore,
	ttl time.Duration,
	refreshTTL time.Duration,
	l logrus.FieldLogger,
) (*ClientWithStaleData, error) {
	if refreshTTL > ttl {
		return nil, fmt.Errorf("refresh ttl (%v) cannot be greater than ttl (%v)", refreshTTL, ttl)
	}

	c := ClientWithStaleData{
		client:         client,
		store:          store,
		ttl:            ttl,
		refreshTTL:     refreshTTL,
		refreshTimeout: 30 * time.Second,
		l:              l,
		profileUpdates: make(chan profileDBUpdateRequest, 1000),
	}

	return &c, nil
}

// RunScheduler runs internal scheduling goroutine.
// Doesn't block.
func (c *ClientWithStaleData) RunScheduler() {
	ctx, cancel := context.WithCancel(context.Background())
	c.stop = cancel

	go func() {
		pendingUpdates := make(map[string]bool)
		doneUpdates := make(chan string)

		for {
			// This is intended for blocking scheduler for unit testing.
			// In standard execution this is always nil.
			if c.schedulerPendingOps != nil {
				c.schedulerPendingOps <- len(pendingUpdates)
			}

			select {
			case req := <-c.profileUpdates:
				if pendingUpdates[req.login] {
					continue
				}
				pendingUpdates[req.login] = true

				go func(req profileDBUpdateRequest) {
					c.l.Infof("ClientWithStaleData: scheduled profile update for %s...", req.login)
					if err := c.updateProfile(ctx, req); err != nil {
						c.l.Errorf("ClientWithStaleData scheduler: updating profile data: %v", err)
					} else {
						c.l.Infof("ClientWithStaleData: scheduled profile update for %s done", req.login)
					}
					select {
					case doneUpdates <- req.login:
					case <-ctx.Done():
					}
				}(req)
			case login := <-doneUpdates:
				delete(pendingUpdates, login)

			// Finish
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Profile returns user profile.
//
// Returns data from db if available.
func (c *ClientWithStaleData) Profile(ctx context.Context, login string) (*app.RawProfile, error) {
	login = strings.ToLower(login)

	data, err := c.store.ReadKey(c.profileDBKey(login))
	if err != nil {
		return nil, fmt.Errorf("reading profile from store: %w", err)
	}
	if data != nil {
		entry, err := c.unserializeProfile(data)
		if err != nil {
			return nil, fmt.Errorf("unserializing profile data: %w", err)
		}
		entryCreated := time.Unix(entry.Created, 0)
		if entryCreated.Add(c.ttl).After(time.Now()) {
			if entryCreated.Add(c.refreshTTL).Before(time.Now()) {
				c.scheduleUpdate(login)
			}

			return entry.Data, nil
		}
	}

	profile, err := c.client.Profile(ctx, login)
	if err != nil {
		return nil, err
	}
	if err := c.saveProfile(login, profile); err != nil {
		c.l.Errorf("ClientWithStaleData: saving profile %s: %v", login, err)
	}

	return profile, nil
}

// Close stops the scheduler.
func (c *ClientWithStaleData) Close() {
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
}

func (c *ClientWithStaleData) scheduleUpdate(login string) {
	select {
	case c.profileUpdates <- profileDBUpdateRequest{login: login}:
	default:
		c.l.Warnf("ClientWithStaleData: no free slots left, skipping update for %s", login)
	}
}

func (c *ClientWithStaleData) updateProfile(ctx context.Context, req profileDBUpdateRequest) error {
	ctx, cancel := context.WithTimeout(ctx, c.refreshTimeout)
	defer cancel()

	profile, err := c.client.Profile(ctx, req.login)
	if err != nil {
		return fmt.Errorf("calling client.Profile: %w", err)
	}
	if err := c.saveProfile(req.login, profile); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}

	return nil
}

func (c *ClientWithStaleData) saveProfile(login string, profile *app.RawProfile) error {
	dbdata, err := c.serializeProfile(profileDBEntry{
		Created: time.Now().Unix(),
		Data:    profile,
	})
	if err != nil {
		return fmt.Errorf("serializing data for save: %w", err)
	}

	return c.store.UpdateKey(c.profileDBKey(login), dbdata)
}

func (c *ClientWithStaleData) profileDBKey(login string) []byte {
	return []byte("profile/" + login)
}

func (c *ClientWithStaleData) serializeProfile(entry profileDBEntry) ([]byte, error) {
	data, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("marshalling json: %w", err)
	}

	return data, nil
}

func (c *ClientWithStaleData) unserializeProfile(data []byte) (*profileDBEntry, error) {
	var entry profileDBEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("unmarshalling json: %w", err)
	}

	return &entry, nil
}

type profileDBEntry struct {
	Created int64
	Data    *app.RawProfile
}

type profileDBUpdateRequest struct {
	login string
}
