// Package store defines the persistent key-value store holding the task and
// history collections, plus the JSON codec used on top of every backend.
package store

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// Collection names.
const (
	Tasks   = "tasks"
	History = "history"
)

// KV is a byte-level key-value backend.
// Implementations are used from a single goroutine and need no locking.
type KV interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(key string) (data []byte, ok bool, err error)

	// Put writes data under key, replacing any previous value.
	Put(key string, data []byte) error

	// Close releases backend resources.
	Close() error
}

// Save serializes value as JSON and writes it under collection.
func Save(kv KV, collection string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	if err := kv.Put(collection, data); err != nil {
		return fmt.Errorf("write %s: %w", collection, err)
	}
	return nil
}

// Load reads collection into dst, which must be a non-nil pointer. It
// returns false, leaving dst untouched, when the key is missing, unreadable,
// or does not decode into dst's type; callers start empty.
func Load(kv KV, collection string, dst any) bool {
	target := reflect.ValueOf(dst)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		return false
	}
	data, ok, err := kv.Get(collection)
	if err != nil || !ok || len(data) == 0 {
		return false
	}
	// json.Unmarshal keeps what it decoded before a type mismatch, so decode
	// into a scratch value and publish it only on success.
	scratch := reflect.New(target.Elem().Type())
	if err := json.Unmarshal(data, scratch.Interface()); err != nil {
		return false
	}
	target.Elem().Set(scratch.Elem())
	return true
}
