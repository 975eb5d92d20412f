package databases

// go generate: mockery --name ContractDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/teckion/dealership-api/models"
)

const contractName = "contracts"

// ContractDatabase contains the methods to use with the contract database
type ContractDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.Contract, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.Contract, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(context.Context, interface{}, interface{}, ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOne(context.Context, interface{}, ...*options.DeleteOptions) (int64, error)
	Count(context.Context, interface{}, ...*options.CountOptions) (int64, error)
}

type contractDatabase struct {
	db DatabaseHelper
}

// NewContractDatabase initializes a new instance of contract database with
// the provided db connection
func NewContractDatabase(db DatabaseHelper) ContractDatabase {
	return &contractDatabase{
		db: db,
	}
}

func (c *contractDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Contract, error) {
	contract := &models.Contract{}
	err := c.db.Collection(contractName).FindOne(ctx, filter, opts...).Decode(&contract)
	if err != nil {
		return nil, err
	}
	return contract, nil
}

func (c *contractDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Contract, error) {
	var contracts []models.Contract
	cur, err := c.db.Collection(contractName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&contracts)
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

func (c *contractDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	return c.db.Collection(contractName).InsertOne(ctx, document, opts...)
}

func (c *contractDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return c.db.Collection(contractName).UpdateOne(ctx, filter, update, opts...)
}

func (c *contractDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (int64, error) {
	return c.db.Collection(contractName).DeleteOne(ctx, filter, opts...)
}

func (c *contractDatabase) Count(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return c.db.Collection(contractName).CountDocuments(ctx, filter, opts...)
}
