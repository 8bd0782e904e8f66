package models

import "time"

// User is a registered account. Password holds the bcrypt hash and is never
// serialized to JSON.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Password  string    `bson:"password" json:"-"`
	FirstName string    `bson:"firstName" json:"firstName"`
	LastName  string    `bson:"lastName" json:"lastName"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
