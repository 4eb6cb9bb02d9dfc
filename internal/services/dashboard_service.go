package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/larderlog/backend/internal/utils"
)

var dashDB *mongo.Database

// InitDashboard wires the database used for aggregate reads.
func InitDashboard(db *mongo.Database) {
	dashDB = db
}

// DashboardSummary is the aggregate read composed for the dashboard view.
type DashboardSummary struct {
	Products          int64   `json:"products"`
	FoodItems         int64   `json:"foodItems"`
	ShoppingListItems int64   `json:"shoppingListItems"`
	Budgets           int64   `json:"budgets"`
	Categories        int64   `json:"categories"`
	WasteRecords      int64   `json:"wasteRecords"`
	WasteCostTotal    float64 `json:"wasteCostTotal"`
}

func countTask(ctx context.Context, collection, owner string) utils.ParallelTask {
	return func() (interface{}, error) {
		return dashDB.Collection(collection).CountDocuments(ctx, bson.M{"user_id": owner})
	}
}

func wasteCostTask(ctx context.Context, owner string) utils.ParallelTask {
	return func() (interface{}, error) {
		pipeline := []bson.M{
			{"$match": bson.M{"user_id": owner}},
			{"$group": bson.M{"_id": nil, "total": bson.M{"$sum": "$cost_estimate"}}},
		}
		cursor, err := dashDB.Collection("waste_records").Aggregate(ctx, pipeline)
		if err != nil {
			return float64(0), err
		}
		defer cursor.Close(ctx)

		var results []struct {
			Total float64 `bson:"total"`
		}
		if err := cursor.All(ctx, &results); err != nil {
			return float64(0), err
		}
		if len(results) == 0 {
			return float64(0), nil
		}
		return results[0].Total, nil
	}
}

// BuildDashboard gathers per-owner counts across all collections plus the
// total estimated waste cost, fanning the reads out in parallel.
func BuildDashboard(ctx context.Context, owner string) (DashboardSummary, error) {
	tasks := []utils.ParallelTask{
		countTask(ctx, "products", owner),
		countTask(ctx, "food_items", owner),
		countTask(ctx, "shopping_list", owner),
		countTask(ctx, "budgets", owner),
		countTask(ctx, "categories", owner),
		countTask(ctx, "waste_records", owner),
		wasteCostTask(ctx, owner),
	}

	results, errs := utils.RunParallelTasks(tasks)
	for _, err := range errs {
		if err != nil {
			return DashboardSummary{}, err
		}
	}

	return DashboardSummary{
		Products:          results[0].(int64),
		FoodItems:         results[1].(int64),
		ShoppingListItems: results[2].(int64),
		Budgets:           results[3].(int64),
		Categories:        results[4].(int64),
		WasteRecords:      results[5].(int64),
		WasteCostTotal:    results[6].(float64),
	}, nil
}
