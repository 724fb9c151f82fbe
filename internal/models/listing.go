// internal/models/listing.go
package models

type Seller struct {
	ID               string   `json:"id" validate:"required"`
	Name             string   `json:"name" validate:"required"`
	Badges           []string `json:"badges,omitempty"`
	MemberSince      string   `json:"member_since,omitempty"`
	AdsPosted        int      `json:"ads_posted" validate:"min=0"`
	ResponseRate     int      `json:"response_rate" validate:"min=0,max=100"`
	Tier             string   `json:"tier,omitempty"`
	Followers        int      `json:"followers" validate:"min=0"`
	Rating           float64  `json:"rating" validate:"min=0,max=5"`
	IsOnline         bool     `json:"is_online"`
	IsVerifiedMobile bool     `json:"is_verified_mobile"`
	IsVerifiedEmail  bool     `json:"is_verified_email"`
}

// Listing is one marketplace item. Price is in whole rupees.
type Listing struct {
	ID          string        `json:"id" validate:"required"`
	Title       string        `json:"title" validate:"required"`
	Description string        `json:"description"`
	Price       int64         `json:"price" validate:"min=0"`
	Category    string        `json:"category" validate:"required"`
	Condition   Condition     `json:"condition" validate:"required,oneof=new like-new used"`
	Location    string        `json:"location"`
	CreatedAt   Date          `json:"created_at"`
	ExpiresAt   Date          `json:"expires_at"`
	Featured    bool          `json:"featured"`
	Status      ListingStatus `json:"status" validate:"omitempty,oneof=active expired sold"`
	Seller      *Seller       `json:"seller,omitempty"`
}

// Category.Count is display data from the fixture and is never recomputed.
type Category struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Slug  string `json:"slug" validate:"required,slug"`
	Icon  string `json:"icon,omitempty"`
	Count int    `json:"count" validate:"min=0"`
}
