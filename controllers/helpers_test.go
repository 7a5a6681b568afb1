package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/janvichoudhary08/FactoryManageServer/condb"
	"github.com/janvichoudhary08/FactoryManageServer/controllers"
	"github.com/janvichoudhary08/FactoryManageServer/middleware"
	"github.com/janvichoudhary08/FactoryManageServer/routes"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestApp(store condb.Store) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	routes.RegisterRoutes(app, controllers.New(store, time.Second))
	return app
}

// call sends body as JSON (when non-nil) and decodes a JSON response.
func call(t *testing.T, app *fiber.App, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal body: %v", err)
		}
		r = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	out := map[string]any{}
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			t.Fatalf("%s %s: response is not JSON: %s", method, path, raw)
		}
	}
	return resp.StatusCode, out
}

func results(t *testing.T, body map[string]any) []map[string]any {
	t.Helper()

	list, ok := body["Result"].([]any)
	if !ok {
		t.Fatalf("Result is not a list: %v", body)
	}
	out := make([]map[string]any, 0, len(list))
	for _, v := range list {
		out = append(out, v.(map[string]any))
	}
	return out
}

func seed(t *testing.T, store condb.Store, coll string, doc any) primitive.ObjectID {
	t.Helper()

	id, err := store.Collection(coll).InsertOne(context.Background(), doc)
	if err != nil {
		t.Fatalf("seed %s: %v", coll, err)
	}
	return id
}

func wantStatus(t *testing.T, got, want int, body map[string]any) {
	t.Helper()
	if got != want {
		t.Fatalf("status = %d, want %d (body %v)", got, want, body)
	}
}
