package dto

type CheckoutItemDTO struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"  binding:"required,min=1"`
}

type CheckoutDTO struct {
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"required"`
	Address      string `json:"address" binding:"required"`
	Suburb       string `json:"suburb"`
	Postcode     string `json:"postcode" binding:"required"`
	PropertyType string `json:"propertyType" binding:"required"`
	Notes        string `json:"notes"`
	AgreeTerms   bool   `json:"agreeTerms" binding:"required"`

	Items []CheckoutItemDTO `json:"items" binding:"required,min=1,dive"`
}
