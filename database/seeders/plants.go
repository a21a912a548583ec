package seeders

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/plantnet/app/models"
)

func init() {
	Register("plants", SeedPlants)
}

// SeedPlants inserts a small sample catalog. It is a no-op when the plants
// collection already has documents, so reseeding is safe.
func SeedPlants(ctx context.Context, db *mongo.Database) error {
	col := db.Collection("plants")

	count, err := col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seller := &models.Seller{
		Name:  "GreenThumb Nursery",
		Email: "hello@greenthumb.example",
	}

	plants := []interface{}{
		models.Plant{Name: "Monstera Deliciosa", Category: "indoor", Description: "Split-leaf climber, tolerates low light.", Price: 24.5, Quantity: 15, Seller: seller},
		models.Plant{Name: "Snake Plant", Category: "succulent", Description: "Near indestructible, purifies air.", Price: 12.0, Quantity: 40, Seller: seller},
		models.Plant{Name: "Fiddle Leaf Fig", Category: "indoor", Description: "Statement tree, needs bright light.", Price: 39.99, Quantity: 8, Seller: seller},
		models.Plant{Name: "Rubber Plant", Category: "indoor", Description: "Glossy leaves, easy care.", Price: 18.75, Quantity: 22, Seller: seller},
		models.Plant{Name: "String of Pearls", Category: "succulent", Description: "Trailing succulent for hanging pots.", Price: 9.5, Quantity: 30, Seller: seller},
		models.Plant{Name: "Peace Lily", Category: "flowering", Description: "White blooms, shade friendly.", Price: 14.25, Quantity: 18, Seller: seller},
	}

	_, err = col.InsertMany(ctx, plants)
	return err
}
