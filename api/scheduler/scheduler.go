package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/teckion/dealership-api/databases"
	"github.com/teckion/dealership-api/models"
)

// trendWindow is the number of daily buckets kept in the analytics trend
const trendWindow = 7

// staleAfter is how long a needs_changes contract may sit untouched before
// the seller gets a reminder email
const staleAfter = 48 * time.Hour

const jobTimeout = 30 * time.Second

// Mailer sends a rendered notification email
type Mailer interface {
	Send(toName, toEmail, subject, body string) error
}

// Scheduler runs the background jobs: the nightly analytics rollup and the
// stale contract reminder sweep. A single instance is assumed per deployment.
type Scheduler struct {
	cron *cron.Cron
	ADB  databases.AnalyticsDatabase
	CDB  databases.ContractDatabase
	UDB  databases.UserDatabase
	M    Mailer
}

// New creates a scheduler with all jobs registered but not yet started
func New(adb databases.AnalyticsDatabase, cdb databases.ContractDatabase, udb databases.UserDatabase, m Mailer) *Scheduler {
	s := &Scheduler{
		cron: cron.New(cron.WithLocation(time.UTC)),
		ADB:  adb,
		CDB:  cdb,
		UDB:  udb,
		M:    m,
	}

	// midnight UTC: fold the daily counters into the trend window
	if _, err := s.cron.AddFunc("0 0 * * *", s.RollupTrends); err != nil {
		zap.S().With(err).Error("failed to schedule trend rollup")
	}
	// every 6 hours: nudge sellers sitting on change requests
	if _, err := s.cron.AddFunc("0 */6 * * *", s.RemindStaleContracts); err != nil {
		zap.S().With(err).Error("failed to schedule stale contract sweep")
	}

	return s
}

// Start begins running the registered jobs on their schedules
func (s *Scheduler) Start() {
	s.cron.Start()
	zap.S().Info("scheduler started")
}

// Stop halts the scheduler, waiting for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("scheduler stopped")
}

// RollupTrends appends today's inquiry and revenue counters as a new trend
// bucket, trims the window and zeroes the dailies. It also refreshes the
// pending deal count so the dashboard number does not drift.
func (s *Scheduler) RollupTrends() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	usage, err := s.ADB.FindUsage(ctx)
	if err != nil {
		zap.S().With(err).Warn("trend rollup skipped, no usage document")
		return
	}

	point := models.TrendPoint{
		Date:      time.Now().UTC().Format("2006-01-02"),
		Inquiries: usage.DailyInquiries,
		Revenue:   usage.DailyRevenue,
	}
	trends := append(usage.Trends, point)
	if len(trends) > trendWindow {
		trends = trends[len(trends)-trendWindow:]
	}

	pending, err := s.CDB.Count(ctx, bson.M{"contract.status": models.StatusPending})
	if err != nil {
		zap.S().With(err).Warn("failed to count pending deals")
	}

	_, err = s.ADB.UpdateUsage(ctx, bson.M{"$set": bson.M{
		"trends":         trends,
		"dailyInquiries": 0,
		"dailyRevenue":   0,
		"pendingDeals":   pending,
	}})
	if err != nil {
		zap.S().With(err).Error("failed to write trend rollup")
		return
	}
	zap.S().Infow("trend rollup complete",
		"inquiries", point.Inquiries,
		"revenue", point.Revenue,
	)
}

// RemindStaleContracts emails sellers whose contracts have sat in
// needs_changes beyond the staleness cutoff
func (s *Scheduler) RemindStaleContracts() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	cutoff := time.Now().UTC().Add(-staleAfter)
	stale, err := s.CDB.Find(ctx, bson.M{
		"contract.status":    models.StatusNeedsChanges,
		"contract.updatedAt": bson.M{"$lt": cutoff},
	})
	if err != nil {
		zap.S().With(err).Warn("stale contract sweep failed")
		return
	}

	for _, contract := range stale {
		sID, err := primitive.ObjectIDFromHex(contract.Details.SellerID)
		if err != nil {
			continue
		}
		seller, err := s.UDB.FindOne(ctx, bson.M{"_id": sID})
		if err != nil {
			zap.S().With(err).Warnw("seller lookup failed for stale contract",
				"contractID", contract.ID.Hex(),
			)
			continue
		}

		subject := "Reminder: a buyer is waiting on contract changes"
		body := fmt.Sprintf(
			"The contract for %s has an open change request from the buyer: %q. Please revise and resubmit it.",
			contract.Details.VehicleName, contract.Details.ChangeRequestMessage,
		)
		if err := s.M.Send(seller.Details.Name, seller.Details.Email, subject, body); err != nil {
			zap.S().With(err).Warnw("failed to send stale contract reminder",
				"contractID", contract.ID.Hex(),
			)
		}
	}

	if len(stale) > 0 {
		zap.S().Infow("stale contract sweep complete", "reminders", len(stale))
	}
}
