package mock

import (
	"errors"
	"sync"
)

// KVStore mocks github.KVStore.
type KVStore struct {
	data    map[string][]byte
	reads   int
	updates int
	failing bool
	m       sync.Mutex
}

// NewKVStore creates new KVStore instance with given data
func NewKVStore(data map[string][]byte) *KVStore {
	if data == nil {
		data = make(map[string][]byte)
	}
	return &KVStore{
		data: data,
	}
}

// NewFailingKVStore creates KVStore returning errors on every call.
func NewFailingKVStore() *KVStore {
	return &KVStore{
		data:    make(map[string][]byte),
		failing: true,
	}
}

// ReadKey returns data saved for given key.
func (s *KVStore) ReadKey(key []byte) ([]byte, error) {
	s.m.Lock()
	defer s.m.Unlock()

	s.reads++
	if s.failing {
		return nil, errors.New("store failure")
	}

	return s.data[string(key)], nil
}

// UpdateKey stores given data under given key.
func (s *KVStore) UpdateKey(key []byte, data []byte) error {
	s.m.Lock()
	defer s.m.Unlock()

	s.updates++
	if s.failing {
		return errors.New("store failure")
	}
	s.data[string(key)] = data

	return nil
}

// Get returns stored data for given key without counting it as a read.
func (s *KVStore) Get(key string) []byte {
	s.m.Lock()
	defer s.m.Unlock()

	return s.data[key]
}

// Reads returns read call count.
func (s *KVStore) Reads() int {
	s.m.Lock()
	defer s.m.Unlock()

	return s.reads
}

// Updates returns update call count.
func (s *KVStore) Updates() int {
	s.m.Lock()
	defer s.m.Unlock()

	return s.updates
}
