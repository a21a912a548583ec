package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Order is a checkout record. PlantID is stored as hex text and coerced to
// an ObjectID at query time when joining against the plants collection.
type Order struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Customer OrderCustomer      `bson:"customer" json:"customer"`
	PlantID  string             `bson:"plantId" json:"plantId"`
	Price    float64            `bson:"price,omitempty" json:"price,omitempty"`
	Quantity int                `bson:"quantity" json:"quantity"`
	Seller   string             `bson:"seller,omitempty" json:"seller,omitempty"`
	Address  string             `bson:"address,omitempty" json:"address,omitempty"`
	Status   string             `bson:"status,omitempty" json:"status,omitempty"`
}

// OrderCustomer embeds the customer identity in the order document.
// Orders relate to users by email, not by an enforced foreign key.
type OrderCustomer struct {
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
	Email string `bson:"email" json:"email"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}

// Order status values. The transition from pending to delivered happens outside
// this API; delivered is terminal with respect to deletion.
const (
	StatusPending   = "pending"
	StatusDelivered = "delivered"
)

// OrderHistory is one enriched row from the customer history join: every
// order field plus the matched plant's display fields, without the plant
// sub-document itself.
type OrderHistory struct {
	Order    `bson:",inline"`
	Name     string `bson:"name" json:"name"`
	Image    string `bson:"image" json:"image"`
	Category string `bson:"category" json:"category"`
}
