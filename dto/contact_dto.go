package dto

type ContactDTO struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Message string `json:"message"`
}

type ServiceInquiryDTO struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Service string `json:"service"`
	Message string `json:"message"`
}
