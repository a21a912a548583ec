package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Plant is a catalog listing. Quantity is the only field mutated after
// insertion, via the atomic increment; there is no deletion path.
type Plant struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	Seller      *Seller            `bson:"seller,omitempty" json:"seller,omitempty"`
}

// Seller captures lightweight seller contact details embedded in a plant.
type Seller struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}
