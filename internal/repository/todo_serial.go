package repository

import (
	"time"

	"taskshelf/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SerializeTodo maps a raw document to the response shape. It is total over
// anything the collection can hold: missing or mistyped fields fall back to
// zero values so legacy documents still serialize.
func SerializeTodo(doc bson.M) domain.Todo {
	t := domain.Todo{
		Name:        docString(doc, "name"),
		Description: docString(doc, "description"),
		Complete:    docBool(doc, "complete"),
		CreatedAt:   docTime(doc, "created_at"),
		UpdatedAt:   docTime(doc, "updated_at"),
	}

	if oid, ok := doc["_id"].(primitive.ObjectID); ok {
		t.ID = oid.Hex()
	}

	return t
}

func docString(doc bson.M, key string) string {
	if s, ok := doc[key].(string); ok {
		return s
	}
	return ""
}

func docBool(doc bson.M, key string) bool {
	if b, ok := doc[key].(bool); ok {
		return b
	}
	return false
}

func docTime(doc bson.M, key string) time.Time {
	switch v := doc[key].(type) {
	case primitive.DateTime:
		return v.Time().UTC()
	case time.Time:
		return v.UTC()
	}
	return time.Time{}
}
