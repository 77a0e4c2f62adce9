package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment บันทึกการชำระเงิน field อื่นๆ ที่ client ส่งมาจะถูกเก็บไว้ใน Extra
type Payment struct {
	ID            primitive.ObjectID     `bson:"_id,omitempty" json:"_id,omitempty" swaggertype:"string"`
	MyEmail       string                 `bson:"myemail" json:"myemail" validate:"required,email"`
	Price         float64                `bson:"price" json:"price" validate:"gte=0"`
	TransactionID string                 `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	ClassID       string                 `bson:"classId" json:"classId"`
	ClassName     string                 `bson:"className,omitempty" json:"className,omitempty"`
	Date          string                 `bson:"date,omitempty" json:"date,omitempty"`
	Extra         map[string]interface{} `bson:",inline" json:"-" swaggerignore:"true"`
}

var paymentKnownFields = map[string]struct{}{
	"id": {}, "_id": {}, "myemail": {}, "price": {}, "transactionId": {},
	"classId": {}, "className": {}, "date": {},
}

type paymentAlias Payment

// UnmarshalJSON keeps unknown keys in Extra.
func (p *Payment) UnmarshalJSON(data []byte) error {
	var alias paymentAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for k := range paymentKnownFields {
		delete(raw, k)
	}
	*p = Payment(alias)
	if len(raw) > 0 {
		p.Extra = raw
	} else {
		p.Extra = nil
	}
	return nil
}

// MarshalJSON flattens Extra back next to the known fields.
func (p Payment) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(paymentAlias(p))
	if err != nil {
		return nil, err
	}
	if len(p.Extra) == 0 {
		return known, nil
	}
	out := make(map[string]interface{}, len(p.Extra)+8)
	for k, v := range p.Extra {
		if _, reserved := paymentKnownFields[k]; reserved {
			continue
		}
		out[k] = v
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(known, &fields); err != nil {
		return nil, err
	}
	for k, v := range fields {
		out[k] = v
	}
	return json.Marshal(out)
}

// PaymentIntentRequest body ของ POST /create-payment-intent
type PaymentIntentRequest struct {
	Price float64 `json:"price" validate:"gt=0"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
