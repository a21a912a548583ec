package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a customer profile, keyed by email. Created on the first request
// that mentions an unseen email and never overwritten afterwards.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Role      string             `bson:"role,omitempty" json:"role,omitempty"`
	Timestamp int64              `bson:"timestamp,omitempty" json:"timestamp,omitempty"` // epoch milliseconds at creation
}

// RoleCustomer is the role assigned to every newly registered user.
const RoleCustomer = "customer"
