package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	Id                 primitive.ObjectID   `json:"id" bson:"_id"`
	Email              string               `json:"email" bson:"email"`
	Password           string               `json:"-" bson:"password"`
	ResetPasswordToken string               `json:"-" bson:"reset_password_token,omitempty"`
	Categories         []primitive.ObjectID `json:"categories" bson:"categories"`
	CreatedAt          time.Time            `json:"createdAt" bson:"created_at"`
	UpdatedAt          time.Time            `json:"updatedAt" bson:"updated_at"`
}
