package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// isDuplicateKey reports whether err is a unique index violation.
func isDuplicateKey(err error) bool {
	var writeException mongo.WriteException
	if errors.As(err, &writeException) {
		for _, e := range writeException.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	return mongo.IsDuplicateKeyError(err)
}

type tagRefCount struct {
	TagID string `bson:"_id"`
	Count int64  `bson:"count"`
}

// countTagReferences groups the documents matching filter by tag id.
// $setUnion collapses repeated ids inside one document so each document
// counts at most once per tag.
func countTagReferences(ctx context.Context, coll *mongo.Collection, filter bson.M) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter}},
		bson.D{{Key: "$project", Value: bson.M{"tags": bson.M{"$setUnion": bson.A{bson.M{"$ifNull": bson.A{"$tags", bson.A{}}}, bson.A{}}}}}},
		bson.D{{Key: "$unwind", Value: "$tags"}},
		bson.D{{Key: "$group", Value: bson.M{"_id": "$tags", "count": bson.M{"$sum": 1}}}},
	}
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate tag references: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []tagRefCount
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode tag references: %w", err)
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.TagID] = row.Count
	}
	return counts, nil
}

// tagsEqual matches a stored tag array exactly. An empty set also matches a
// null or missing field.
func tagsEqual(tags []string) interface{} {
	if len(tags) == 0 {
		return bson.M{"$in": bson.A{nil, bson.A{}}}
	}
	arr := make(bson.A, 0, len(tags))
	for _, id := range tags {
		arr = append(arr, id)
	}
	return arr
}

// paginate converts a 1-based page into skip and limit values.
func paginate(page, pageSize int) (int64, int64) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return int64((page - 1) * pageSize), int64(pageSize)
}
