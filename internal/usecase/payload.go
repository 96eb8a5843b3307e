package usecase

import (
	"encoding/json"

	"booklib/internal/entity"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("json_string", validateJSONString)
	validate.RegisterValidation("json_book_id", validateJSONBookID)
}

// BookPayload is a decoded create/update body. Fields stay raw so that
// wrong-shaped values (a numeric title, a string id) survive decoding and are
// rejected by validation instead of failing the JSON decoder.
//
// Field order is significant: validation reports the first failing field in
// declaration order, which fixes the error precedence at title, author, id.
type BookPayload struct {
	Title  json.RawMessage `json:"title" validate:"required,json_string"`
	Author json.RawMessage `json:"author" validate:"required,json_string"`
	ID     json.RawMessage `json:"id" validate:"omitempty,json_book_id"`
}

// validateJSONString accepts only a JSON string with non-empty content.
func validateJSONString(fl validator.FieldLevel) bool {
	raw, ok := fl.Field().Interface().(json.RawMessage)
	if !ok {
		return false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return false
	}
	return s != ""
}

// validateJSONBookID accepts only a JSON integer >= 0.
func validateJSONBookID(fl validator.FieldLevel) bool {
	raw, ok := fl.Field().Interface().(json.RawMessage)
	if !ok {
		return false
	}
	var id int64
	if err := json.Unmarshal(raw, &id); err != nil {
		return false
	}
	return id >= 0
}

// HasID reports whether the payload carried an id field at all.
func (p BookPayload) HasID() bool {
	return len(p.ID) > 0
}

// Validate checks the payload against the catalog rules and returns the
// normalized book draft. The first failing rule wins.
func (p BookPayload) Validate() (entity.Book, *ValidationError) {
	if err := validate.Struct(p); err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok || len(errs) == 0 {
			return entity.Book{}, &ValidationError{Field: "body", Message: "Book payload is invalid"}
		}
		switch errs[0].StructField() {
		case "Title":
			return entity.Book{}, errMissingTitle()
		case "Author":
			return entity.Book{}, errMissingAuthor()
		default:
			return entity.Book{}, errInvalidID()
		}
	}

	var book entity.Book
	// Raw fields were vetted above, so these cannot fail.
	_ = json.Unmarshal(p.Title, &book.Title)
	_ = json.Unmarshal(p.Author, &book.Author)
	if p.HasID() {
		_ = json.Unmarshal(p.ID, &book.ID)
	}
	return book, nil
}
