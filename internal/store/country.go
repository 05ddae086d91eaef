package store

import (
	"context"
	"fmt"
	"time"

	"hiking-planner/internal/database"
	"hiking-planner/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const countriesCollection = "countries"

func GetCountryByID(ctx context.Context, db database.DB, id primitive.ObjectID) (*model.Country, error) {
	ct := &model.Country{}
	err := db.Collection(countriesCollection).FindOne(ctx, bson.M{"_id": id}).Decode(ct)
	if err != nil {
		return nil, fmt.Errorf("GetCountryByID: %w", err)
	}
	return ct, nil
}

func ListCountries(ctx context.Context, db database.DB) ([]model.Country, error) {
	cur, err := db.Collection(countriesCollection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("ListCountries: %w", err)
	}
	var countries []model.Country
	if err := cur.All(ctx, &countries); err != nil {
		return nil, fmt.Errorf("ListCountries: %w", err)
	}
	return countries, nil
}

func CreateCountry(ctx context.Context, db database.DB, ct *model.Country) (*model.Country, error) {
	now := time.Now().UTC()
	ct.CreatedAt = now
	ct.UpdatedAt = now
	if ct.States == nil {
		ct.States = []model.CountryState{}
	}
	res, err := db.Collection(countriesCollection).InsertOne(ctx, ct)
	if err != nil {
		return nil, fmt.Errorf("CreateCountry: %w", err)
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		ct.ID = id
	}
	return ct, nil
}

func SaveCountry(ctx context.Context, db database.DB, ct *model.Country) error {
	ct.UpdatedAt = time.Now().UTC()
	_, err := db.Collection(countriesCollection).UpdateOne(ctx,
		bson.M{"_id": ct.ID},
		bson.M{"$set": bson.M{
			"name":      ct.Name,
			"code":      ct.Code,
			"states":    ct.States,
			"updatedAt": ct.UpdatedAt,
		}},
	)
	if err != nil {
		return fmt.Errorf("SaveCountry: %w", err)
	}
	return nil
}

func DeleteCountry(ctx context.Context, db database.DB, id primitive.ObjectID) error {
	_, err := db.Collection(countriesCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("DeleteCountry: %w", err)
	}
	return nil
}
