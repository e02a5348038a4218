package store

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"store-catalog-service/internal/domain"
)

// MockDocumentStorer is a mock implementation of DocumentStorer.
type MockDocumentStorer struct {
	mock.Mock
}

func (m *MockDocumentStorer) Count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	args := m.Called(ctx, collection, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDocumentStorer) Insert(ctx context.Context, collection string, doc interface{}) (bson.M, error) {
	args := m.Called(ctx, collection, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.M), args.Error(1)
}

func (m *MockDocumentStorer) Find(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	args := m.Called(ctx, collection, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.M), args.Error(1)
}

func (m *MockDocumentStorer) CollectionNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDocumentStorer) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestSeedDemoProducts_EmptyCollectionGetsSeeded(t *testing.T) {
	mockStore := new(MockDocumentStorer)
	mockStore.On("Count", mock.Anything, ProductCollection, bson.M{}).Return(int64(0), nil).Once()
	mockStore.On("Insert", mock.Anything, ProductCollection, mock.AnythingOfType("domain.Product")).
		Return(bson.M{}, nil).Times(5)

	SeedDemoProducts(context.Background(), mockStore, discardLogger())

	mockStore.AssertExpectations(t)
}

func TestSeedDemoProducts_SetsInsertionTimestamp(t *testing.T) {
	mockStore := new(MockDocumentStorer)
	mockStore.On("Count", mock.Anything, ProductCollection, bson.M{}).Return(int64(0), nil).Once()
	mockStore.On("Insert", mock.Anything, ProductCollection, mock.MatchedBy(func(doc interface{}) bool {
		p, ok := doc.(domain.Product)
		return ok && !p.CreatedAt.IsZero() && p.Title != ""
	})).Return(bson.M{}, nil).Times(5)

	SeedDemoProducts(context.Background(), mockStore, discardLogger())

	mockStore.AssertExpectations(t)
}

func TestSeedDemoProducts_NonEmptyCollectionIsLeftAlone(t *testing.T) {
	mockStore := new(MockDocumentStorer)
	mockStore.On("Count", mock.Anything, ProductCollection, bson.M{}).Return(int64(5), nil).Once()

	SeedDemoProducts(context.Background(), mockStore, discardLogger())

	mockStore.AssertExpectations(t)
	mockStore.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestSeedDemoProducts_CountErrorIsSwallowed(t *testing.T) {
	mockStore := new(MockDocumentStorer)
	mockStore.On("Count", mock.Anything, ProductCollection, bson.M{}).
		Return(int64(0), errors.New("connection refused")).Once()

	assert.NotPanics(t, func() {
		SeedDemoProducts(context.Background(), mockStore, discardLogger())
	})
	mockStore.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestSeedDemoProducts_InsertErrorsDoNotAbortRemainingInserts(t *testing.T) {
	mockStore := new(MockDocumentStorer)
	mockStore.On("Count", mock.Anything, ProductCollection, bson.M{}).Return(int64(0), nil).Once()
	mockStore.On("Insert", mock.Anything, ProductCollection, mock.AnythingOfType("domain.Product")).
		Return(nil, errors.New("write failed")).Times(5)

	assert.NotPanics(t, func() {
		SeedDemoProducts(context.Background(), mockStore, discardLogger())
	})
	mockStore.AssertExpectations(t)
}

func TestSeedDemoProducts_NilStoreIsTolerated(t *testing.T) {
	assert.NotPanics(t, func() {
		SeedDemoProducts(context.Background(), nil, discardLogger())
	})
}

func TestDemoProducts_RespectDomainBounds(t *testing.T) {
	products := demoProducts()
	assert.Len(t, products, 5)

	for _, p := range products {
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Category)
		assert.GreaterOrEqual(t, p.Price, 0.0)
		assert.GreaterOrEqual(t, p.Rating, 0.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
		assert.GreaterOrEqual(t, p.StockQty, 0)
	}
}
