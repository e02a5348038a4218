package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// ProductCollection is the collection holding catalog products.
const ProductCollection = "product"

// DocumentStorer defines the document-store operations consumed by the API
// layer and the seed routine. Find matches documents by equality on every
// filter key and returns at most limit documents in store-default order.
type DocumentStorer interface {
	Count(ctx context.Context, collection string, filter bson.M) (int64, error)
	Insert(ctx context.Context, collection string, doc interface{}) (bson.M, error)
	Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error)
	CollectionNames(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}
