package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// SelectedClass รายการคลาสในตะกร้าของนักเรียน (ยังไม่ได้ชำระเงิน)
type SelectedClass struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty" swaggertype:"string"`
	ClassID        string             `bson:"classId" json:"classId" example:"507f1f77bcf86cd799439011"`
	MyEmail        string             `bson:"myemail" json:"myemail" example:"jane@example.com"`
	Name           string             `bson:"name,omitempty" json:"name,omitempty"`
	Image          string             `bson:"image,omitempty" json:"image,omitempty"`
	InstructorName string             `bson:"instructorName,omitempty" json:"instructorName,omitempty"`
	Price          float64            `bson:"price" json:"price"`
}

type SelectClassRequest struct {
	ClassID        string  `json:"classId" validate:"required,mongodb"`
	MyEmail        string  `json:"myemail" validate:"required,email"`
	Name           string  `json:"name"`
	Image          string  `json:"image"`
	InstructorName string  `json:"instructorName"`
	Price          float64 `json:"price" validate:"gte=0"`
}

func (r SelectClassRequest) ToSelectedClass() *SelectedClass {
	return &SelectedClass{
		ClassID:        r.ClassID,
		MyEmail:        r.MyEmail,
		Name:           r.Name,
		Image:          r.Image,
		InstructorName: r.InstructorName,
		Price:          r.Price,
	}
}

// UpdateSelectedClassRequest fields left nil stay unchanged.
type UpdateSelectedClassRequest struct {
	Name           *string  `json:"name"`
	Image          *string  `json:"image"`
	InstructorName *string  `json:"instructorName"`
	Price          *float64 `json:"price" validate:"omitempty,gte=0"`
}

// Fields คืนค่า field ที่ต้องอัปเดต (เฉพาะที่ส่งมา)
func (r UpdateSelectedClassRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Image != nil {
		fields["image"] = *r.Image
	}
	if r.InstructorName != nil {
		fields["instructorName"] = *r.InstructorName
	}
	if r.Price != nil {
		fields["price"] = *r.Price
	}
	return fields
}
