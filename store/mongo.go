package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStore keeps every document type in a single collection; each
// document carries its type in a documentType field and a string _id.
//
// Uniqueness of registration emails is still a read-then-write check in
// the auth flow; deployments should add a unique index on
// (documentType, email) as a backstop against concurrent registrations.
type MongoStore struct {
	collection *mongo.Collection
}

func NewMongoStore(collection *mongo.Collection) *MongoStore {
	return &MongoStore{collection: collection}
}

func (s *MongoStore) Create(ctx context.Context, docType string, fields Fields) (Document, error) {
	id := uuid.NewString()
	doc := bson.M{"_id": id, "documentType": docType}
	for k, v := range fields {
		doc[k] = v
	}
	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		return Document{}, fmt.Errorf("create %s document: %w", docType, err)
	}
	return Document{ID: id, Type: docType, Fields: cloneFields(fields)}, nil
}

func (s *MongoStore) Fetch(ctx context.Context, docType string, filter Fields) ([]Document, error) {
	query := bson.M{"documentType": docType}
	for k, v := range filter {
		query[k] = v
	}
	cursor, err := s.collection.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch %s documents: %w", docType, err)
	}
	defer cursor.Close(ctx)

	var docs []Document
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			continue
		}
		docs = append(docs, fromBSON(docType, raw))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("fetch %s documents: %w", docType, err)
	}
	return docs, nil
}

func (s *MongoStore) FetchByID(ctx context.Context, docType, id string) (Document, error) {
	var raw bson.M
	err := s.collection.FindOne(ctx, bson.M{"_id": id, "documentType": docType}).Decode(&raw)
	if err == mongo.ErrNoDocuments {
		return Document{}, ErrNotFound
	}
	if err != nil {
		return Document{}, fmt.Errorf("fetch %s document %s: %w", docType, id, err)
	}
	return fromBSON(docType, raw), nil
}

func (s *MongoStore) Patch(id string) Patch {
	return &mongoPatch{store: s, id: id, set: Fields{}}
}

type mongoPatch struct {
	store *MongoStore
	id    string
	set   Fields
}

func (p *mongoPatch) Set(fields Fields) Patch {
	for k, v := range fields {
		p.set[k] = v
	}
	return p
}

func (p *mongoPatch) Commit(ctx context.Context) error {
	update := bson.M{}
	for k, v := range p.set {
		update[k] = v
	}
	res, err := p.store.collection.UpdateOne(ctx, bson.M{"_id": p.id}, bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("patch document %s: %w", p.id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func fromBSON(docType string, raw bson.M) Document {
	fields := Fields{}
	for k, v := range raw {
		if k == "_id" || k == "documentType" {
			continue
		}
		fields[k] = v
	}
	id, _ := raw["_id"].(string)
	return Document{ID: id, Type: docType, Fields: fields}
}

func cloneFields(fields Fields) Fields {
	out := make(Fields, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}
