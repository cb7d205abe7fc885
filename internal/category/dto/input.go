package dto

type CategoryInput struct {
	Name string `json:"name" binding:"required"`
	// BrandID must match the brand selected in the form; the usecase
	// rejects a mismatch before any backend call.
	BrandID         int64 `json:"brandId" binding:"required"`
	SelectedBrandID int64 `json:"selectedBrandId" binding:"required"`
}
