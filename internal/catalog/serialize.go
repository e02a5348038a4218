package catalog

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// idKey is the store-internal identifier field. It never appears in serialized
// output; its value is emitted under "id" instead.
const idKey = "_id"

// SerializeDocument transforms one stored document into a JSON-safe map:
// the store-internal "_id" key is replaced with "id" holding the identifier's
// canonical string form, and point-in-time values become RFC 3339 text.
// All other fields pass through unchanged. The input document is never
// mutated; documents without an identifier serialize without an "id" key.
func SerializeDocument(doc bson.M) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		if k == idKey {
			continue
		}
		out[k] = jsonSafeValue(v)
	}
	if raw, ok := doc[idKey]; ok && raw != nil {
		out["id"] = identifierString(raw)
	}
	return out
}

// identifierString returns the canonical string form of a store-assigned
// identifier. ObjectIDs render as their 24-character hex form.
func identifierString(raw interface{}) string {
	switch id := raw.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprintf("%v", raw)
	}
}

// jsonSafeValue converts timestamp-typed values to their RFC 3339 textual
// representation. Values of any other type, including already-textual
// timestamps, are returned as-is, which makes serialization idempotent.
func jsonSafeValue(v interface{}) interface{} {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case primitive.DateTime:
		return t.Time().UTC().Format(time.RFC3339)
	default:
		return v
	}
}
