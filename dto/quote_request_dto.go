package dto

type CreateQuoteRequestDTO struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Location    string `json:"location"`
	Description string `json:"description"`
	ProductID   string `json:"productId" binding:"required"`
}

type UpdateQuoteStatusDTO struct {
	Status string `json:"status" binding:"required"`
}
