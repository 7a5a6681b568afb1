package condb

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore keeps documents in process. Data is lost on exit.
type MemoryStore struct {
	mu    sync.RWMutex
	colls map[string][]doc
}

func NewMemory() *MemoryStore {
	return &MemoryStore{colls: map[string][]doc{}}
}

func (s *MemoryStore) Collection(name string) Collection {
	return memoryCollection{store: s, name: name}
}

func (s *MemoryStore) Ping(context.Context) error  { return nil }
func (s *MemoryStore) Close(context.Context) error { return nil }

type memoryCollection struct {
	store *MemoryStore
	name  string
}

func (c memoryCollection) InsertOne(_ context.Context, v any) (primitive.ObjectID, error) {
	d, err := toDoc(v)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id := primitive.NewObjectID()
	d["_id"] = id.Hex()

	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	c.store.colls[c.name] = append(c.store.colls[c.name], d)
	return id, nil
}

func (c memoryCollection) Find(_ context.Context, filter bson.M, out any) error {
	f, err := toDoc(filter)
	if err != nil {
		return err
	}

	c.store.mu.RLock()
	found := []doc{}
	for _, d := range c.store.colls[c.name] {
		if d.matches(f) {
			found = append(found, d)
		}
	}
	err = decodeDocs(found, out)
	c.store.mu.RUnlock()
	return err
}

func (c memoryCollection) FindOne(_ context.Context, filter bson.M, out any) error {
	f, err := toDoc(filter)
	if err != nil {
		return err
	}

	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	for _, d := range c.store.colls[c.name] {
		if d.matches(f) {
			return decodeDocs(d, out)
		}
	}
	return ErrNotFound
}

func (c memoryCollection) UpdateOne(_ context.Context, filter, set bson.M) (int64, error) {
	f, err := toDoc(filter)
	if err != nil {
		return 0, err
	}
	s, err := toDoc(set)
	if err != nil {
		return 0, err
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	for _, d := range c.store.colls[c.name] {
		if d.matches(f) {
			if d.apply(s) {
				return 1, nil
			}
			return 0, nil
		}
	}
	return 0, nil
}

func (c memoryCollection) DeleteOne(_ context.Context, filter bson.M) (int64, error) {
	f, err := toDoc(filter)
	if err != nil {
		return 0, err
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	docs := c.store.colls[c.name]
	for i, d := range docs {
		if d.matches(f) {
			c.store.colls[c.name] = append(docs[:i:i], docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
