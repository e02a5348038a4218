package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a catalog product as stored in the "product" collection.
// The store is schemaless, so this struct describes the write-path shape only:
// reads come back as raw documents and are serialized field-by-field, which
// keeps unknown fields intact.
// The validate tags mirror the write-time bounds: non-negative price and stock,
// rating within 0-5, image entries must be URLs.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price" validate:"gte=0"`
	Category    string             `bson:"category" json:"category" validate:"required"`
	InStock     bool               `bson:"in_stock" json:"in_stock"`
	Images      []string           `bson:"images,omitempty" json:"images,omitempty" validate:"omitempty,dive,url"`
	Rating      float64            `bson:"rating,omitempty" json:"rating,omitempty" validate:"gte=0,lte=5"`
	StockQty    int                `bson:"stock_qty" json:"stock_qty" validate:"gte=0"`
	Tags        []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Featured    bool               `bson:"featured" json:"featured"`
	CreatedAt   time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
