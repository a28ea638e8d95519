// Package sizes persists the per-dataset node and edge counts shared by the
// converter and the running-time report.
//
// The store is a single file rewritten in full on every update. There is no
// locking: two processes updating the same file concurrently race and the
// last writer wins.
package sizes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/renameio/v2"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

var ErrCorrupt = errors.New("sizes: corrupt store")

// Size holds the node count N and distinct undirected edge count M of a dataset
type Size struct {
	N int `json:"n"`
	M int `json:"m"`
}

// Total returns N + M, the size measure used by the running-time report
func (s Size) Total() int {
	return s.N + s.M
}

// Store maps dataset name to its size
type Store map[string]Size

// Names returns the dataset names in sorted order
func (s Store) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Marshal encodes the store as a google.protobuf.Struct of
// {name: {"n": N, "m": M}}.
func (s Store) Marshal() ([]byte, error) {
	fields := make(map[string]*structpb.Value, len(s))
	for name, size := range s {
		fields[name] = structpb.NewStructValue(&structpb.Struct{
			Fields: map[string]*structpb.Value{
				"n": structpb.NewNumberValue(float64(size.N)),
				"m": structpb.NewNumberValue(float64(size.M)),
			},
		})
	}
	return proto.MarshalOptions{Deterministic: true}.Marshal(&structpb.Struct{Fields: fields})
}

// Unmarshal decodes data produced by Marshal
func Unmarshal(data []byte) (Store, error) {
	var msg structpb.Struct
	if err := proto.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	store := make(Store, len(msg.GetFields()))
	for name, value := range msg.GetFields() {
		entry := value.GetStructValue()
		if entry == nil {
			return nil, fmt.Errorf("%w: entry %q is not a struct", ErrCorrupt, name)
		}
		n, okN := entry.GetFields()["n"]
		m, okM := entry.GetFields()["m"]
		if !okN || !okM {
			return nil, fmt.Errorf("%w: entry %q missing n or m", ErrCorrupt, name)
		}
		store[name] = Size{N: int(n.GetNumberValue()), M: int(m.GetNumberValue())}
	}
	return store, nil
}

// Load reads the store at path. A missing file yields an empty store.
func Load(path string) (Store, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return make(Store), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read sizes file: %w", err)
	}

	store, err := Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return store, nil
}

// Save rewrites the whole store at path
func (s Store) Save(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode sizes: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create sizes directory: %w", err)
	}
	return renameio.WriteFile(path, data, 0644)
}

// Update loads the store at path, sets name to size and persists the full
// store back. Every other entry is carried over unchanged.
func Update(path, name string, size Size) (Store, error) {
	store, err := Load(path)
	if err != nil {
		return nil, err
	}

	store[name] = size
	if err := store.Save(path); err != nil {
		return nil, fmt.Errorf("failed to save sizes: %w", err)
	}
	return store, nil
}
