package utils

import (
	"errors"
	"reflect"
	"strings"

	"summer-camp-server/src/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json field names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseBody อ่าน JSON body แล้ว validate ตาม struct tag
// คืนค่า false เมื่อได้เขียน response 400 ไปแล้ว
func ParseBody(c *fiber.Ctx, out interface{}) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(out); err != nil {
		return false, ValidationError(c, err)
	}
	return true, nil
}

func ValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return HandleError(c, fiber.StatusBadRequest, "Invalid input")
	}
	fields := make(map[string]string, len(ve))
	for _, fieldErr := range ve {
		fields[fieldErr.Field()] = fieldErr.Tag()
	}
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Error:   true,
		Status:  fiber.StatusBadRequest,
		Message: "validation failed",
		Fields:  fields,
	})
}

// ParseObjectID reads a hex object id from the named path param.
func ParseObjectID(c *fiber.Ctx, param string) (primitive.ObjectID, bool, error) {
	id, err := primitive.ObjectIDFromHex(c.Params(param))
	if err != nil {
		return primitive.NilObjectID, false, HandleError(c, fiber.StatusBadRequest, "Invalid ID")
	}
	return id, true, nil
}
