// Package entity contains the core business objects of the project.
package entity

import "time"

// SheepCategory classifies a listing by breed origin.
type SheepCategory string

// Supported sheep categories.
const (
	CategoryLocal    SheepCategory = "local"
	CategoryRomanian SheepCategory = "romanian"
	CategorySpanish  SheepCategory = "spanish"
)

// Sheep represents a livestock listing in the catalog.
type Sheep struct {
	ID                 string        `json:"id"`                           // Backend-assigned identifier, opaque string.
	Name               string        `json:"name"`                         // Display name of the listing.
	Category           SheepCategory `json:"category"`                     // Breed origin category.
	Price              float64       `json:"price"`                        // Listing price, currency implied by deployment.
	DiscountPercentage *float64      `json:"discountPercentage,omitempty"` // Optional discount in [0,100].
	ImageIDs           []string      `json:"imageIds"`                     // References into the image store.
	Images             []string      `json:"images"`                       // Resolved image URLs, populated at read time.
	Age                string        `json:"age"`                          // Free-text age description.
	Weight             string        `json:"weight"`                       // Free-text weight description.
	Breed              string        `json:"breed"`                        // Breed name.
	HealthStatus       string        `json:"healthStatus"`                 // Free-text health summary.
	Description        string        `json:"description"`                  // Long-form description.
	IsFeatured         bool          `json:"isFeatured"`                   // Highlighted on the storefront.
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
}
