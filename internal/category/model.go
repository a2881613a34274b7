package category

import (
	"time"

	"github.com/gosimple/slug"
)

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryRequest payload for create and rename.
// swagger:model CategoryRequest
type CategoryRequest struct {
	Name string `json:"name" example:"Electronics"`
}

// Slugify is the lowercase kebab-case form used for product and category slugs.
func Slugify(name string) string { return slug.Make(name) }
