// Package condb holds the document store the record service runs on.
//
// Three drivers share one Collection contract: MongoDB (the production
// store), a Postgres JSONB table per collection, and an in-process memory
// store used for local runs and tests. Filters are flat equality matches on
// top-level fields; "_id" values are primitive.ObjectID.
package condb

import (
	"context"
	"errors"
	"fmt"

	"github.com/janvichoudhary08/FactoryManageServer/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names.
const (
	Employees  = "employee"
	Sizes      = "sizes"
	Attendance = "attendance"
	Progress   = "progress"
	Users      = "users"
)

var collections = []string{Employees, Sizes, Attendance, Progress, Users}

// ErrNotFound is returned by FindOne when no document matches.
var ErrNotFound = errors.New("document not found")

type Collection interface {
	// InsertOne stores doc under a freshly generated id and returns it.
	InsertOne(ctx context.Context, doc any) (primitive.ObjectID, error)
	// Find decodes every matching document, in storage order, into out (a pointer to a slice).
	Find(ctx context.Context, filter bson.M, out any) error
	// FindOne decodes the first matching document into out.
	FindOne(ctx context.Context, filter bson.M, out any) error
	// UpdateOne sets fields on the first match and reports how many documents changed.
	// A match whose fields already hold the new values counts as zero.
	UpdateOne(ctx context.Context, filter, set bson.M) (int64, error)
	// DeleteOne removes the first match and reports how many documents were removed.
	DeleteOne(ctx context.Context, filter bson.M) (int64, error)
}

type Store interface {
	Collection(name string) Collection
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Open connects the driver named by cfg.StoreDriver.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StoreDriver {
	case "mongo":
		return OpenMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	case "postgres":
		return OpenPostgres(ctx, cfg.DatabaseURL)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// Unavailable returns a Store whose every operation fails with err. The
// server keeps running without a database and reports each data request as
// a query failure.
func Unavailable(err error) Store {
	return unavailable{err: err}
}

type unavailable struct{ err error }

func (u unavailable) Collection(string) Collection { return u }
func (u unavailable) Ping(context.Context) error { return u.err }
func (u unavailable) Close(context.Context) error { return nil }
func (u unavailable) Find(context.Context, bson.M, any) error { return u.err }
func (u unavailable) FindOne(context.Context, bson.M, any) error { return u.err }

func (u unavailable) InsertOne(context.Context, any) (primitive.ObjectID, error) {
	return primitive.NilObjectID, u.err
}

func (u unavailable) UpdateOne(context.Context, bson.M, bson.M) (int64, error) {
	return 0, u.err
}

func (u unavailable) DeleteOne(context.Context, bson.M) (int64, error) {
	return 0, u.err
}
