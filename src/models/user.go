package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RoleNone       = ""
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// User ผู้ใช้งานระบบ (นักเรียน, ผู้สอน, แอดมิน)
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty" swaggertype:"string" example:"507f1f77bcf86cd799439011"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty" example:"Jane Doe"`
	Email string             `bson:"email" json:"email" example:"jane@example.com"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty" enums:"student,instructor,admin"`
}

// CreateUserRequest body ของ POST /users
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required,email"`
	Photo string `json:"photo"`
	Role  string `json:"role" validate:"omitempty,oneof=student"`
}

// SignInRequest is the identity payload exchanged for a token at /jwt.
type SignInRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse ใช้ตอบกลับข้อความเดียว เช่น "user already exist"
type MessageResponse struct {
	Message string `json:"message"`
}
