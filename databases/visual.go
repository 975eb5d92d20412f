package databases

// go generate: mockery --name VisualDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/teckion/dealership-api/models"
)

const visualName = "saved_visuals"

// VisualDatabase contains the methods to use with the saved visuals database
type VisualDatabase interface {
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.SavedVisual, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	DeleteOne(context.Context, interface{}, ...*options.DeleteOptions) (int64, error)
}

type visualDatabase struct {
	db DatabaseHelper
}

// NewVisualDatabase initializes a new instance of visual database with the
// provided db connection
func NewVisualDatabase(db DatabaseHelper) VisualDatabase {
	return &visualDatabase{
		db: db,
	}
}

func (c *visualDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.SavedVisual, error) {
	var visuals []models.SavedVisual
	cur, err := c.db.Collection(visualName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&visuals)
	if err != nil {
		return nil, err
	}
	return visuals, nil
}

func (c *visualDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	return c.db.Collection(visualName).InsertOne(ctx, document, opts...)
}

func (c *visualDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (int64, error) {
	return c.db.Collection(visualName).DeleteOne(ctx, filter, opts...)
}
