package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	ClassPending  = "pending"
	ClassApproved = "approved"
	ClassDenied   = "denied"
)

// Class คลาสที่ผู้สอนเปิดรับสมัคร
type Class struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty" swaggertype:"string" example:"507f1f77bcf86cd799439011"`
	Name              string             `bson:"name" json:"name" example:"Junior Robotics"`
	Image             string             `bson:"image,omitempty" json:"image,omitempty"`
	InstructorName    string             `bson:"instructorName,omitempty" json:"instructorName,omitempty" example:"John Smith"`
	Email             string             `bson:"email" json:"email" example:"john@example.com"`
	Price             float64            `bson:"price" json:"price" example:"49.5"`
	Seat              int                `bson:"seat" json:"seat" example:"20"`
	StudentsEnrolment int                `bson:"studentsEnrolment" json:"studentsEnrolment" example:"0"`
	Status            string             `bson:"status" json:"status" enums:"pending,approved,denied"`
	Feedback          string             `bson:"feedback,omitempty" json:"feedback,omitempty"`
}

// CreateClassRequest body ของ POST /classes
type CreateClassRequest struct {
	Name           string  `json:"name" validate:"required"`
	Image          string  `json:"image"`
	InstructorName string  `json:"instructorName"`
	Email          string  `json:"email" validate:"required,email"`
	Price          float64 `json:"price" validate:"gte=0"`
	Seat           int     `json:"seat" validate:"gte=0"`
}

// ToClass builds a new pending class from the request.
func (r CreateClassRequest) ToClass() *Class {
	return &Class{
		Name:              r.Name,
		Image:             r.Image,
		InstructorName:    r.InstructorName,
		Email:             r.Email,
		Price:             r.Price,
		Seat:              r.Seat,
		StudentsEnrolment: 0,
		Status:            ClassPending,
	}
}

type FeedbackRequest struct {
	Feedback string `json:"feedback" validate:"required"`
}
