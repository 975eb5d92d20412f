package databases

// go generate: mockery --name AnalyticsDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/teckion/dealership-api/models"
)

const analyticsName = "analytics"

// analyticsDocID is the single usage rollup document
const analyticsDocID = "usage"

// AnalyticsDatabase contains the methods to use with the analytics database
type AnalyticsDatabase interface {
	FindUsage(ctx context.Context) (*models.Analytics, error)
	IncrementCategory(ctx context.Context, category string) error
	UpdateUsage(ctx context.Context, update interface{}) (*mongo.UpdateResult, error)
}

type analyticsDatabase struct {
	db DatabaseHelper
}

// NewAnalyticsDatabase initializes a new instance of analytics database with
// the provided db connection
func NewAnalyticsDatabase(db DatabaseHelper) AnalyticsDatabase {
	return &analyticsDatabase{
		db: db,
	}
}

func (a *analyticsDatabase) FindUsage(ctx context.Context) (*models.Analytics, error) {
	usage := &models.Analytics{}
	err := a.db.Collection(analyticsName).FindOne(ctx, bson.M{"_id": analyticsDocID}).Decode(&usage)
	if err != nil {
		return nil, err
	}
	return usage, nil
}

// IncrementCategory bumps the counter for an intent category along with the
// visit totals. Unknown categories only count as a visit.
func (a *analyticsDatabase) IncrementCategory(ctx context.Context, category string) error {
	inc := bson.M{"totalVisits": 1, "dailyInquiries": 1}
	if field := models.AnalyticsCounterField(category); field != "" {
		inc[field] = 1
	}
	upsert := true
	_, err := a.db.Collection(analyticsName).UpdateOne(ctx,
		bson.M{"_id": analyticsDocID},
		bson.M{"$inc": inc},
		&options.UpdateOptions{Upsert: &upsert},
	)
	return err
}

func (a *analyticsDatabase) UpdateUsage(ctx context.Context, update interface{}) (*mongo.UpdateResult, error) {
	upsert := true
	return a.db.Collection(analyticsName).UpdateOne(ctx,
		bson.M{"_id": analyticsDocID},
		update,
		&options.UpdateOptions{Upsert: &upsert},
	)
}
