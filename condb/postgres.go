package condb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostgresStore keeps each collection in its own table of JSONB documents.
// Filters are evaluated with jsonb containment (@>), so numeric fields match
// regardless of integer or float spelling.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}

	for _, name := range collections {
		_, err := pool.Exec(ctx, fmt.Sprintf(
			`CREATE TABLE IF NOT EXISTS %s (
				seq BIGSERIAL,
				id  TEXT PRIMARY KEY,
				doc JSONB NOT NULL
			)`, pgx.Identifier{name}.Sanitize()))
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("create table %s: %w", name, err)
		}
	}

	log.Println("[condb] postgres connected")
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Collection(name string) Collection {
	return postgresCollection{pool: s.pool, table: pgx.Identifier{name}.Sanitize()}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Close(context.Context) error {
	s.pool.Close()
	return nil
}

type postgresCollection struct {
	pool  *pgxpool.Pool
	table string
}

func jsonArg(v any) (string, error) {
	d, err := toDoc(v)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(d)
	return string(b), err
}

func (c postgresCollection) InsertOne(ctx context.Context, v any) (primitive.ObjectID, error) {
	d, err := toDoc(v)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id := primitive.NewObjectID()
	d["_id"] = id.Hex()
	body, err := json.Marshal(d)
	if err != nil {
		return primitive.NilObjectID, err
	}

	_, err = c.pool.Exec(ctx,
		`INSERT INTO `+c.table+` (id, doc) VALUES ($1, $2::jsonb)`,
		id.Hex(), string(body),
	)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return id, nil
}

func (c postgresCollection) Find(ctx context.Context, filter bson.M, out any) error {
	f, err := jsonArg(filter)
	if err != nil {
		return err
	}

	rows, err := c.pool.Query(ctx,
		`SELECT doc FROM `+c.table+` WHERE doc @> $1::jsonb ORDER BY seq`, f)
	if err != nil {
		return err
	}
	defer rows.Close()

	found := []json.RawMessage{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return err
		}
		found = append(found, raw)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	return decodeDocs(found, out)
}

func (c postgresCollection) FindOne(ctx context.Context, filter bson.M, out any) error {
	f, err := jsonArg(filter)
	if err != nil {
		return err
	}

	var raw []byte
	err = c.pool.QueryRow(ctx,
		`SELECT doc FROM `+c.table+` WHERE doc @> $1::jsonb ORDER BY seq LIMIT 1`, f,
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (c postgresCollection) UpdateOne(ctx context.Context, filter, set bson.M) (int64, error) {
	f, err := jsonArg(filter)
	if err != nil {
		return 0, err
	}
	s, err := jsonArg(set)
	if err != nil {
		return 0, err
	}

	// A first match that already contains every new value is left alone and
	// reports zero, mirroring Mongo's modified count.
	tag, err := c.pool.Exec(ctx,
		`UPDATE `+c.table+` SET doc = doc || $2::jsonb
		 WHERE id = (SELECT id FROM `+c.table+` WHERE doc @> $1::jsonb ORDER BY seq LIMIT 1)
		   AND NOT doc @> $2::jsonb`,
		f, s,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (c postgresCollection) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	f, err := jsonArg(filter)
	if err != nil {
		return 0, err
	}

	tag, err := c.pool.Exec(ctx,
		`DELETE FROM `+c.table+`
		 WHERE id = (SELECT id FROM `+c.table+` WHERE doc @> $1::jsonb ORDER BY seq LIMIT 1)`,
		f,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
