package dto

// CategoryResponse is one standard category.
type CategoryResponse struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
}

// ListCategoriesResponse is the category list payload.
type ListCategoriesResponse struct {
	Items []CategoryResponse `json:"items"`
}
