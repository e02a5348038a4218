package catalog

import (
	"go.mongodb.org/mongo-driver/bson"
)

// ListParams holds the optional, independently-specified inputs for a catalog
// listing. Featured is a pointer to distinguish between not set and false: a
// nil Featured means no constraint, so both featured and non-featured products
// match.
type ListParams struct {
	Category string
	Featured *bool
}

// BuildFilter converts the provided parameters into an equality filter for the
// document store. Only explicitly provided inputs become filter keys; omitted
// inputs place no constraint on their field.
func BuildFilter(p ListParams) bson.M {
	filter := bson.M{}
	if p.Category != "" {
		filter["category"] = p.Category
	}
	if p.Featured != nil {
		filter["featured"] = *p.Featured
	}
	return filter
}
