package scheduler_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/teckion/dealership-api/api/scheduler"
	"github.com/teckion/dealership-api/databases"
	"github.com/teckion/dealership-api/databases/mocks"
	"github.com/teckion/dealership-api/models"
)

type recordingMailer struct {
	sent []string
}

func (m *recordingMailer) Send(toName, toEmail, subject, body string) error {
	m.sent = append(m.sent, toEmail)
	return nil
}

func TestScheduler_RollupTrendsTrimsWindowAndResetsDailies(t *testing.T) {
	db := &mocks.DatabaseHelper{}

	analyticsConn := &mocks.CollectionHelper{}
	singleResultHelper := &mocks.SingleResultHelper{}
	singleResultHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Analytics)
		(*arg).DailyInquiries = 5
		(*arg).DailyRevenue = 250000
		for i := 0; i < 7; i++ {
			(*arg).Trends = append((*arg).Trends, models.TrendPoint{Date: fmt.Sprintf("2026-08-2%d", i)})
		}
	})
	analyticsConn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)

	var written bson.M
	analyticsConn.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&mongo.UpdateResult{MatchedCount: 1}, nil).
		Run(func(args mock.Arguments) {
			written = args.Get(2).(bson.M)
		})
	db.On("Collection", "analytics").Return(analyticsConn)

	contractConn := &mocks.CollectionHelper{}
	contractConn.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(2), nil)
	db.On("Collection", "contracts").Return(contractConn)

	s := scheduler.New(
		databases.NewAnalyticsDatabase(db),
		databases.NewContractDatabase(db),
		databases.NewUserDatabase(db),
		&recordingMailer{},
	)
	s.RollupTrends()

	set := written["$set"].(bson.M)
	trends := set["trends"].([]models.TrendPoint)
	assert.Len(t, trends, 7)
	assert.Equal(t, int64(5), trends[6].Inquiries)
	assert.Equal(t, int64(250000), trends[6].Revenue)
	assert.Equal(t, 0, set["dailyInquiries"])
	assert.Equal(t, 0, set["dailyRevenue"])
	assert.Equal(t, int64(2), set["pendingDeals"])
}

func TestScheduler_RemindStaleContracts(t *testing.T) {
	db := &mocks.DatabaseHelper{}

	sellerID := primitive.NewObjectID()

	contractConn := &mocks.CollectionHelper{}
	cursorHelper := &mocks.CursorHelper{}
	cursorHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.Contract)
		*arg = []models.Contract{{
			ID: primitive.NewObjectID(),
			Details: models.ContractDetails{
				SellerID:             sellerID.Hex(),
				VehicleName:          "Atlas Cruiser",
				Status:               models.StatusNeedsChanges,
				ChangeRequestMessage: "Lower the delivery fee",
			},
		}}
	})
	contractConn.On("Find", mock.Anything, mock.Anything).Return(cursorHelper, nil)
	db.On("Collection", "contracts").Return(contractConn)

	userConn := &mocks.CollectionHelper{}
	singleResultHelper := &mocks.SingleResultHelper{}
	singleResultHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.User)
		(*arg).ID = sellerID
		(*arg).Details.Name = "Raj"
		(*arg).Details.Email = "raj@sharmamotors.example.com"
	})
	userConn.On("FindOne", mock.Anything, mock.Anything).Return(singleResultHelper)
	db.On("Collection", "users").Return(userConn)

	mailer := &recordingMailer{}
	s := scheduler.New(
		databases.NewAnalyticsDatabase(db),
		databases.NewContractDatabase(db),
		databases.NewUserDatabase(db),
		mailer,
	)
	s.RemindStaleContracts()

	assert.Equal(t, []string{"raj@sharmamotors.example.com"}, mailer.sent)
}
