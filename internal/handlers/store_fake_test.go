package handlers

import (
	"context"
	"errors"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var errStoreDown = errors.New("store unavailable")

// memStore is an in-memory Store with equality-only filters.
type memStore struct {
	mu   sync.Mutex
	data map[string][]bson.M
	down bool
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]bson.M{}}
}

func (m *memStore) seed(collection string, docs ...bson.M) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, doc := range docs {
		res, _ := m.InsertOne(context.Background(), collection, doc)
		ids = append(ids, res.InsertedID.(primitive.ObjectID))
	}
	return ids
}

func (m *memStore) count(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data[collection])
}

func matches(doc, filter bson.M) bool {
	for k, v := range filter {
		if !reflect.DeepEqual(doc[k], v) {
			return false
		}
	}
	return true
}

func (m *memStore) Find(_ context.Context, collection string, filter bson.M) ([]bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.down {
		return nil, errStoreDown
	}
	out := make([]bson.M, 0)
	for _, doc := range m.data[collection] {
		if matches(doc, filter) {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (m *memStore) FindOne(_ context.Context, collection string, filter bson.M) (bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.down {
		return nil, errStoreDown
	}
	for _, doc := range m.data[collection] {
		if matches(doc, filter) {
			return doc, nil
		}
	}
	return nil, nil
}

func (m *memStore) InsertOne(_ context.Context, collection string, doc bson.M) (*mongo.InsertOneResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.down {
		return nil, errStoreDown
	}
	stored := bson.M{}
	for k, v := range doc {
		stored[k] = v
	}
	if _, ok := stored["_id"]; !ok {
		stored["_id"] = primitive.NewObjectID()
	}
	m.data[collection] = append(m.data[collection], stored)
	return &mongo.InsertOneResult{InsertedID: stored["_id"]}, nil
}

func (m *memStore) DeleteOne(_ context.Context, collection string, filter bson.M) (*mongo.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.down {
		return nil, errStoreDown
	}
	docs := m.data[collection]
	for i, doc := range docs {
		if matches(doc, filter) {
			m.data[collection] = append(docs[:i], docs[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (m *memStore) UpdateOne(_ context.Context, collection string, filter, set bson.M) (*mongo.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.down {
		return nil, errStoreDown
	}
	for _, doc := range m.data[collection] {
		if !matches(doc, filter) {
			continue
		}
		res := &mongo.UpdateResult{MatchedCount: 1}
		for k, v := range set {
			if !reflect.DeepEqual(doc[k], v) {
				doc[k] = v
				res.ModifiedCount = 1
			}
		}
		return res, nil
	}
	return &mongo.UpdateResult{}, nil
}
