package condb

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type item struct {
	ID   primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name string             `json:"name" bson:"name"`
	Day  int                `json:"day" bson:"day"`
}

// runStoreSuite exercises the Collection contract shared by every driver.
func runStoreSuite(t *testing.T, coll Collection) {
	ctx := context.Background()

	idA, err := coll.InsertOne(ctx, item{Name: "a", Day: 5})
	if err != nil {
		t.Fatalf("InsertOne: %v", err)
	}
	if _, err := coll.InsertOne(ctx, item{Name: "b", Day: 5}); err != nil {
		t.Fatalf("InsertOne: %v", err)
	}
	if _, err := coll.InsertOne(ctx, item{Name: "a", Day: 6}); err != nil {
		t.Fatalf("InsertOne: %v", err)
	}

	t.Run("find all in insertion order", func(t *testing.T) {
		var got []item
		if err := coll.Find(ctx, bson.M{}, &got); err != nil {
			t.Fatalf("Find: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("len = %d, want 3", len(got))
		}
		if got[0].ID != idA || got[1].Name != "b" || got[2].Day != 6 {
			t.Errorf("unexpected order: %+v", got)
		}
	})

	t.Run("find by composite filter", func(t *testing.T) {
		var got []item
		if err := coll.Find(ctx, bson.M{"name": "a", "day": 5}, &got); err != nil {
			t.Fatalf("Find: %v", err)
		}
		if len(got) != 1 || got[0].ID != idA {
			t.Errorf("got %+v, want only %s", got, idA.Hex())
		}
	})

	t.Run("find with no match is empty", func(t *testing.T) {
		got := []item{}
		if err := coll.Find(ctx, bson.M{"name": "zzz"}, &got); err != nil {
			t.Fatalf("Find: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})

	t.Run("find one by id", func(t *testing.T) {
		var got item
		if err := coll.FindOne(ctx, bson.M{"_id": idA}, &got); err != nil {
			t.Fatalf("FindOne: %v", err)
		}
		if got.Name != "a" || got.Day != 5 {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("find one missing", func(t *testing.T) {
		var got item
		err := coll.FindOne(ctx, bson.M{"_id": primitive.NewObjectID()}, &got)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})

	t.Run("update counts only real changes", func(t *testing.T) {
		n, err := coll.UpdateOne(ctx, bson.M{"_id": idA}, bson.M{"name": "a2"})
		if err != nil || n != 1 {
			t.Fatalf("UpdateOne = %d, %v; want 1", n, err)
		}
		n, err = coll.UpdateOne(ctx, bson.M{"_id": idA}, bson.M{"name": "a2"})
		if err != nil || n != 0 {
			t.Errorf("no-op UpdateOne = %d, %v; want 0", n, err)
		}
		n, err = coll.UpdateOne(ctx, bson.M{"_id": primitive.NewObjectID()}, bson.M{"name": "x"})
		if err != nil || n != 0 {
			t.Errorf("missing UpdateOne = %d, %v; want 0", n, err)
		}
	})

	t.Run("delete once", func(t *testing.T) {
		n, err := coll.DeleteOne(ctx, bson.M{"_id": idA})
		if err != nil || n != 1 {
			t.Fatalf("DeleteOne = %d, %v; want 1", n, err)
		}
		n, err = coll.DeleteOne(ctx, bson.M{"_id": idA})
		if err != nil || n != 0 {
			t.Errorf("second DeleteOne = %d, %v; want 0", n, err)
		}
	})
}

func TestMemoryStore(t *testing.T) {
	runStoreSuite(t, NewMemory().Collection(Sizes))
}

func TestMemoryStoreCollectionsAreSeparate(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	if _, err := s.Collection(Sizes).InsertOne(ctx, item{Name: "a"}); err != nil {
		t.Fatal(err)
	}

	var got []item
	if err := s.Collection(Employees).Find(ctx, bson.M{}, &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("employee collection has %d docs, want 0", len(got))
	}
}

func TestMongoStore(t *testing.T) {
	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s, err := OpenMongo(ctx, uri, "factorymanage_test")
	if err != nil {
		t.Fatalf("OpenMongo: %v", err)
	}
	defer s.Close(ctx)
	if err := s.db.Drop(ctx); err != nil {
		t.Fatalf("drop: %v", err)
	}

	runStoreSuite(t, s.Collection(Sizes))
}

func TestPostgresStore(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	s, err := OpenPostgres(ctx, dsn)
	if err != nil {
		t.Fatalf("OpenPostgres: %v", err)
	}
	defer s.Close(ctx)
	if _, err := s.pool.Exec(ctx, `TRUNCATE sizes`); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	runStoreSuite(t, s.Collection(Sizes))
}

func TestUnavailable(t *testing.T) {
	down := errors.New("no connection")
	s := Unavailable(down)
	ctx := context.Background()

	if err := s.Ping(ctx); !errors.Is(err, down) {
		t.Errorf("Ping = %v", err)
	}
	if _, err := s.Collection(Users).InsertOne(ctx, item{}); !errors.Is(err, down) {
		t.Errorf("InsertOne = %v", err)
	}
	var got []item
	if err := s.Collection(Users).Find(ctx, bson.M{}, &got); !errors.Is(err, down) {
		t.Errorf("Find = %v", err)
	}
}
