package models

// InsertResult ผลลัพธ์จากการ insert (รูปแบบเดียวกับ driver)
type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId" swaggertype:"string"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// CheckoutResult response ของ POST /payments/:id
type CheckoutResult struct {
	Result         *InsertResult `json:"result"`
	UpdatedClasses *UpdateResult `json:"updatedClasses"`
	MyClassResult  *DeleteResult `json:"myClassResult"`
}

// RoleCheckResponse is keyed by the role name, e.g. {"admin": true}.
type RoleCheckResponse map[string]bool
