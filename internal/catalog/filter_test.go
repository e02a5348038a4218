package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

// Helper function to get a pointer (useful for the tri-state Featured input).
func PtrTo[T any](v T) *T {
	return &v
}

func TestBuildFilter_ContainsOnlyProvidedInputs(t *testing.T) {
	tests := []struct {
		name   string
		params ListParams
		want   bson.M
	}{
		{
			name:   "no inputs yields empty filter",
			params: ListParams{},
			want:   bson.M{},
		},
		{
			name:   "category only",
			params: ListParams{Category: "plush"},
			want:   bson.M{"category": "plush"},
		},
		{
			name:   "featured true",
			params: ListParams{Featured: PtrTo(true)},
			want:   bson.M{"featured": true},
		},
		{
			name:   "featured false is a constraint, not an omission",
			params: ListParams{Featured: PtrTo(false)},
			want:   bson.M{"featured": false},
		},
		{
			name:   "category and featured combined",
			params: ListParams{Category: "cards", Featured: PtrTo(true)},
			want:   bson.M{"category": "cards", "featured": true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildFilter(tt.params))
		})
	}
}

func TestBuildFilter_UnsetFeaturedAddsNoKey(t *testing.T) {
	filter := BuildFilter(ListParams{Category: "toys"})

	_, hasFeatured := filter["featured"]
	assert.False(t, hasFeatured, "unset featured must not constrain the listing")
}

func TestBuildFilter_DoesNotAliasInputs(t *testing.T) {
	featured := true
	params := ListParams{Category: "toys", Featured: &featured}

	filter := BuildFilter(params)
	filter["category"] = "mutated"
	filter["featured"] = false

	assert.Equal(t, "toys", params.Category)
	assert.True(t, *params.Featured)
}
