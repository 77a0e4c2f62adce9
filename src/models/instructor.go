package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Instructor public instructor directory entry.
type Instructor struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty" swaggertype:"string"`
	Name            string             `bson:"name" json:"name"`
	Email           string             `bson:"email" json:"email"`
	Image           string             `bson:"image,omitempty" json:"image,omitempty"`
	NumberOfClasses int                `bson:"numberOfClasses,omitempty" json:"numberOfClasses,omitempty"`
	Classes         []string           `bson:"classes,omitempty" json:"classes,omitempty"`
}
