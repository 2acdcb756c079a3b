package model

import "time"

type Admin struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    string    `json:"userId" bson:"user_id"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

type AdminRegistration struct {
	UserID     string `json:"userId"`
	SecretCode string `json:"secretCode"`
}
