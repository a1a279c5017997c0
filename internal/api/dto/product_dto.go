package dto

import "time"

type CreateProductDTO struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	ImageURL        string  `json:"imageUrl"`
	UserID          int64   `json:"userId"`
	KindOfProductID int64   `json:"kindOfProductId"`
}

func (d *CreateProductDTO) Validate() []string {
	var missing []string
	if d.Title == "" {
		missing = append(missing, "title")
	}
	if d.Description == "" {
		missing = append(missing, "description")
	}
	if d.ImageURL == "" {
		missing = append(missing, "imageUrl")
	}
	if d.UserID == 0 {
		missing = append(missing, "userId")
	}
	if d.KindOfProductID == 0 {
		missing = append(missing, "kindOfProductId")
	}
	if len(missing) > 0 {
		return []string{missingFieldsMessage(missing)}
	}
	return nil
}

type UpdateProductDTO struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	ImageURL        string  `json:"imageUrl"`
	Active          bool    `json:"active"`
	UserID          int64   `json:"userId"`
	KindOfProductID int64   `json:"kindOfProductId"`
}

func (d *UpdateProductDTO) Validate() []string {
	var missing []string
	if d.ID == 0 {
		missing = append(missing, "id")
	}
	if d.Title == "" {
		missing = append(missing, "title")
	}
	if d.Description == "" {
		missing = append(missing, "description")
	}
	if d.ImageURL == "" {
		missing = append(missing, "imageUrl")
	}
	if d.UserID == 0 {
		missing = append(missing, "userId")
	}
	if d.KindOfProductID == 0 {
		missing = append(missing, "kindOfProductId")
	}
	if len(missing) > 0 {
		return []string{missingFieldsMessage(missing)}
	}
	return nil
}

type ProductDTO struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	ImageURL        string    `json:"imageUrl"`
	Active          bool      `json:"active"`
	UserID          int64     `json:"userId"`
	KindOfProductID int64     `json:"kindOfProductId"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type CreateKindOfProductDTO struct {
	Title  string `json:"title"`
	Active *bool  `json:"active,omitempty"`
}

func (d *CreateKindOfProductDTO) Validate() []string {
	if d.Title == "" {
		return []string{missingFieldsMessage([]string{"title"})}
	}
	return nil
}

type UpdateKindOfProductDTO struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Active bool   `json:"active"`
}

func (d *UpdateKindOfProductDTO) Validate() []string {
	var missing []string
	if d.ID == 0 {
		missing = append(missing, "id")
	}
	if d.Title == "" {
		missing = append(missing, "title")
	}
	if len(missing) > 0 {
		return []string{missingFieldsMessage(missing)}
	}
	return nil
}

type KindOfProductDTO struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
