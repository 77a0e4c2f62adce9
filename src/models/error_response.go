package models

// ErrorResponse โครงสร้างมาตรฐานสำหรับการส่ง Error
type ErrorResponse struct {
	Error   bool              `json:"error" example:"true"`
	Status  int               `json:"status" example:"403"`
	Message string            `json:"message" example:"forbidden access"`
	Fields  map[string]string `json:"fields,omitempty"`
}
