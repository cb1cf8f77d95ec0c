package dto

type CreateProductDTO struct {
	Name            string   `json:"name" binding:"required,min=3"`
	Brand           string   `json:"brand" binding:"required"`
	Model           string   `json:"model" binding:"required"`
	Price           string   `json:"price" binding:"required"`
	Description     string   `json:"description"`
	Promotions      string   `json:"promotions"`
	CoolingCapacity string   `json:"coolingCapacity"`
	HeatingCapacity string   `json:"heatingCapacity"`
	HasWifi         bool     `json:"hasWifi"`
	Series          string   `json:"series"`
	ProductImages   []string `json:"product_images"`
}

type UpdateProductDTO struct {
	Name            *string   `json:"name,omitempty"`
	Brand           *string   `json:"brand,omitempty"`
	Model           *string   `json:"model,omitempty"`
	Price           *string   `json:"price,omitempty"`
	Description     *string   `json:"description,omitempty"`
	Promotions      *string   `json:"promotions,omitempty"`
	CoolingCapacity *string   `json:"coolingCapacity,omitempty"`
	HeatingCapacity *string   `json:"heatingCapacity,omitempty"`
	HasWifi         *bool     `json:"hasWifi,omitempty"`
	Series          *string   `json:"series,omitempty"`
	Image           *string   `json:"image,omitempty"`
	ProductImages   *[]string `json:"product_images,omitempty"`
}
