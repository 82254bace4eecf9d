package request

type AddItem struct {
	ID            string   `validate:"required" json:"id"`
	Name          string   `validate:"required" json:"name"`
	Price         string   `validate:"required" json:"price"`
	Quantity      int32    `json:"quantity"`
	Image         string   `json:"image"`
	Category      string   `json:"category"`
	SelectedColor string   `json:"selectedColor"`
	Manufacturer  string   `json:"manufacturer"`
	Stock         int32    `json:"stock"`
	Colors        []string `json:"colors"`
}

type SetQuantity struct {
	Quantity int32 `json:"quantity"`
}

type ChangeQuantity struct {
	Delta int32 `validate:"required" json:"delta"`
}
