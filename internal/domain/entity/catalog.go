package entity

import "time"

// Category is the menu section a MenuItem belongs to.
type Category string

const (
	CategoryBurgers Category = "burgers"
	CategoryWings   Category = "wings"
	CategoryFries   Category = "fries"
)

// IsValid checks if the Category is one of the known menu sections.
func (c Category) IsValid() bool {
	switch c {
	case CategoryBurgers, CategoryWings, CategoryFries:
		return true
	default:
		return false
	}
}

// Brand is a menu concept with a fixed set of MenuItems.
type Brand struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Categories []Category `json:"categories"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
}

// MenuItem is a dish of a Brand. Only active items count towards progress.
type MenuItem struct {
	ID          string   `json:"id"`
	BrandID     string   `json:"brand_id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Order       int      `json:"order"`
	IsActive    bool     `json:"is_active"`
}

// Requirement is one photo a location must supply for a MenuItem.
type Requirement struct {
	ID              string   `json:"id"`
	BrandID         string   `json:"brand_id"`
	ItemID          string   `json:"item_id"`
	Title           string   `json:"title"`
	AngleHint       string   `json:"angle_hint"`
	ExampleImageURL string   `json:"example_image_url"`
	Checklist       []string `json:"checklist"`
}

// Ref returns the (item, requirement) pair this requirement defines.
func (r *Requirement) Ref() RequirementRef {
	return RequirementRef{ItemID: r.ItemID, RequirementID: r.ID}
}

// RequirementRef identifies a requirement within a brand.
type RequirementRef struct {
	ItemID        string
	RequirementID string
}
