package repository

import (
	"context"
	"errors"
	"time"

	"taskshelf/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TodoRepository stores todos in a MongoDB collection.
type TodoRepository struct {
	coll *mongo.Collection
}

func NewTodoRepository(db *mongo.Database, collection string) *TodoRepository {
	return &TodoRepository{coll: db.Collection(collection)}
}

// parseID validates the identifier shape before any storage call.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}

func todoQuery(filter domain.TodoFilter) bson.M {
	q := bson.M{}
	if filter.Complete != nil {
		q["complete"] = *filter.Complete
	}
	return q
}

// Insert persists a new todo, assigning its id and timestamps, and returns
// the stored record.
func (r *TodoRepository) Insert(ctx context.Context, in domain.TodoCreate) (domain.Todo, error) {
	now := time.Now().UTC()
	doc := bson.M{
		"name":        in.Name,
		"description": in.Description,
		"complete":    in.Complete,
		"created_at":  now,
		"updated_at":  now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return domain.Todo{}, err
	}

	return r.findByObjectID(ctx, res.InsertedID.(primitive.ObjectID))
}

// FindOne returns the todo with the given id, or ErrNotFound.
func (r *TodoRepository) FindOne(ctx context.Context, id string) (domain.Todo, error) {
	oid, err := parseID(id)
	if err != nil {
		return domain.Todo{}, err
	}
	return r.findByObjectID(ctx, oid)
}

func (r *TodoRepository) findByObjectID(ctx context.Context, oid primitive.ObjectID) (domain.Todo, error) {
	var doc bson.M
	err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Todo{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Todo{}, err
	}
	return SerializeTodo(doc), nil
}

// FindMany returns todos matching the filter, in insertion order, bounded
// by skip and limit.
func (r *TodoRepository) FindMany(ctx context.Context, filter domain.TodoFilter, skip, limit int64) ([]domain.Todo, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cur, err := r.coll.Find(ctx, todoQuery(filter), opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	todos := make([]domain.Todo, 0)
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		todos = append(todos, SerializeTodo(doc))
	}
	return todos, cur.Err()
}

// Update applies the non-nil fields and returns the post-update record.
// An empty payload is rejected with ErrEmptyUpdate.
func (r *TodoRepository) Update(ctx context.Context, id string, in domain.TodoUpdate) (domain.Todo, error) {
	oid, err := parseID(id)
	if err != nil {
		return domain.Todo{}, err
	}
	if in.Empty() {
		return domain.Todo{}, domain.ErrEmptyUpdate
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.Complete != nil {
		set["complete"] = *in.Complete
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return domain.Todo{}, err
	}
	if res.MatchedCount == 0 {
		return domain.Todo{}, domain.ErrNotFound
	}

	return r.findByObjectID(ctx, oid)
}

// Toggle negates the complete flag, refreshes updated_at and returns the
// updated record.
func (r *TodoRepository) Toggle(ctx context.Context, id string) (domain.Todo, error) {
	oid, err := parseID(id)
	if err != nil {
		return domain.Todo{}, err
	}

	current, err := r.findByObjectID(ctx, oid)
	if err != nil {
		return domain.Todo{}, err
	}

	set := bson.M{
		"complete":   !current.Complete,
		"updated_at": time.Now().UTC(),
	}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set}); err != nil {
		return domain.Todo{}, err
	}

	return r.findByObjectID(ctx, oid)
}

// Delete removes the todo with the given id. ErrNotFound when nothing was
// removed.
func (r *TodoRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteMany removes all todos matching the filter and returns the count.
// Zero matches is not an error.
func (r *TodoRepository) DeleteMany(ctx context.Context, filter domain.TodoFilter) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, todoQuery(filter))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Count returns the number of todos matching the filter.
func (r *TodoRepository) Count(ctx context.Context, filter domain.TodoFilter) (int64, error) {
	return r.coll.CountDocuments(ctx, todoQuery(filter))
}
