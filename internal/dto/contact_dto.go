package dto

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Company string `json:"company"`
	Message string `json:"message" validate:"required"`
}

type ContactResponse struct {
	Id     string `json:"id"`
	Status string `json:"status"`
}
