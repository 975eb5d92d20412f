package databases

// go generate: mockery --name QueryDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/teckion/dealership-api/models"
)

const queryName = "queries"

// QueryDatabase contains the methods to use with the query database
type QueryDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.UserQuery, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.UserQuery, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(context.Context, interface{}, interface{}, ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOne(context.Context, interface{}, ...*options.DeleteOptions) (int64, error)
}

type queryDatabase struct {
	db DatabaseHelper
}

// NewQueryDatabase initializes a new instance of query database with the
// provided db connection
func NewQueryDatabase(db DatabaseHelper) QueryDatabase {
	return &queryDatabase{
		db: db,
	}
}

func (c *queryDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.UserQuery, error) {
	query := &models.UserQuery{}
	err := c.db.Collection(queryName).FindOne(ctx, filter, opts...).Decode(&query)
	if err != nil {
		return nil, err
	}
	return query, nil
}

func (c *queryDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.UserQuery, error) {
	var queries []models.UserQuery
	cur, err := c.db.Collection(queryName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&queries)
	if err != nil {
		return nil, err
	}
	return queries, nil
}

func (c *queryDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	return c.db.Collection(queryName).InsertOne(ctx, document, opts...)
}

func (c *queryDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return c.db.Collection(queryName).UpdateOne(ctx, filter, update, opts...)
}

func (c *queryDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (int64, error) {
	return c.db.Collection(queryName).DeleteOne(ctx, filter, opts...)
}
