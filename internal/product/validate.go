package product

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/shop-ecom/internal/category"
)

// MaxPhotoBytes is the largest photo accepted on create and update.
const MaxPhotoBytes = 1_000_000

// Input is the raw multipart form of a create or update request.
type Input struct {
	Name        string
	Description string
	Price       string
	Category    string
	Quantity    string
	Shipping    string
	PhotoSize   int64
	Photo       *Photo
}

// ValidationError names the first field that failed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

type rule struct {
	field   string
	message string
	ok      func(Input) bool
}

var validate = validator.New()

func tag(get func(Input) any, t string) func(Input) bool {
	return func(in Input) bool { return validate.Var(get(in), t) == nil }
}

func nonNegativeDecimal(in Input) bool {
	d, err := decimal.NewFromString(strings.TrimSpace(in.Price))
	return err == nil && !d.IsNegative()
}

// rules is evaluated in order; the order decides which message the client sees.
func rules(photoMessage string) []rule {
	return []rule{
		{"name", "Name is Required", tag(func(in Input) any { return in.Name }, "required")},
		{"description", "Description is Required", tag(func(in Input) any { return in.Description }, "required")},
		{"price", "Price is Required", tag(func(in Input) any { return in.Price }, "required")},
		{"category", "Category is Required", tag(func(in Input) any { return in.Category }, "required")},
		{"quantity", "Quantity is Required", tag(func(in Input) any { return in.Quantity }, "required")},
		{"photo", photoMessage, tag(func(in Input) any { return in.PhotoSize }, "lte="+strconv.Itoa(MaxPhotoBytes))},
		{"price", "Price must be a valid number", nonNegativeDecimal},
		{"quantity", "Quantity must be a whole number", tag(func(in Input) any { return strings.TrimSpace(in.Quantity) }, "number")},
	}
}

var (
	createRules = rules("Photo is Required and should be less then 1mb")
	updateRules = rules("photo is Required and should be less then 1mb")
)

func check(rs []rule, in Input) error {
	for _, r := range rs {
		if !r.ok(in) {
			return &ValidationError{Field: r.field, Message: r.message}
		}
	}
	return nil
}

func ValidateCreate(in Input) error { return check(createRules, in) }

func ValidateUpdate(in Input) error { return check(updateRules, in) }

// Apply copies a validated Input onto p and regenerates the slug.
func (in Input) Apply(p *Product) error {
	price, err := decimal.NewFromString(strings.TrimSpace(in.Price))
	if err != nil {
		return &ValidationError{Field: "price", Message: "Price must be a valid number"}
	}
	qty, err := strconv.Atoi(strings.TrimSpace(in.Quantity))
	if err != nil {
		return &ValidationError{Field: "quantity", Message: "Quantity must be a whole number"}
	}
	ship, _ := strconv.ParseBool(strings.TrimSpace(in.Shipping))

	p.Name = in.Name
	p.Slug = category.Slugify(in.Name)
	p.Description = in.Description
	p.Price = price
	p.CategoryID = strings.TrimSpace(in.Category)
	p.Quantity = qty
	p.Shipping = ship
	if in.Photo != nil {
		p.Photo = in.Photo
		p.HasPhoto = true
	}
	return nil
}
