// File: database/repository/booking/bookingMongoQueries.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"carexyz/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// hasPaymentIntent matches a paymentIntentId that is present and non-null.
var hasPaymentIntent = bson.M{"$exists": true, "$ne": nil}

// CountAll returns the number of bookings.
func (r *MongoBookingRepo) CountAll(ctx context.Context) (int64, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return n, nil
}

// FindRecent returns the newest bookings up to limit.
func (r *MongoBookingRepo) FindRecent(ctx context.Context, limit int) ([]models.Booking, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{}, opts)
}

// FindPayments returns payment-bearing bookings, newest first. An empty status matches all.
func (r *MongoBookingRepo) FindPayments(ctx context.Context, status models.BookingStatus, limit int) ([]models.Booking, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"paymentIntentId": hasPaymentIntent}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, filter, opts)
}

// Revenue sums totalCost across bookings whose status is in statuses.
func (r *MongoBookingRepo) Revenue(ctx context.Context, statuses []models.BookingStatus) (float64, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": bson.M{"$in": statuses}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$totalCost"},
		}}},
	}

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := r.aggregate(ctx, pipeline, &results); err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

// PaymentSummary totals every payment-bearing booking regardless of status.
func (r *MongoBookingRepo) PaymentSummary(ctx context.Context) (models.PaymentSummary, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"paymentIntentId": hasPaymentIntent}}},
		{{Key: "$group", Value: bson.M{
			"_id":           nil,
			"totalPayments": bson.M{"$sum": 1},
			"totalAmount":   bson.M{"$sum": "$totalCost"},
			"confirmedAmount": bson.M{"$sum": bson.M{
				"$cond": bson.A{
					bson.M{"$in": bson.A{"$status", models.RevenueStatuses}},
					"$totalCost",
					0,
				},
			}},
		}}},
	}

	var results []models.PaymentSummary
	if err := r.aggregate(ctx, pipeline, &results); err != nil {
		return models.PaymentSummary{}, err
	}
	if len(results) == 0 {
		return models.PaymentSummary{}, nil
	}
	return results[0], nil
}

func (r *MongoBookingRepo) aggregate(ctx context.Context, pipeline mongo.Pipeline, out interface{}) error {
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("failed to aggregate bookings: %w", err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode booking aggregate: %w", err)
	}
	return nil
}
