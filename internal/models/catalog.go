package models

// Category represents a product category in the catalog
type Category struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	NameEn       string  `json:"nameEn"`
	Slug         string  `json:"slug"`
	Icon         string  `json:"icon"`
	Image        *string `json:"image"`
	ProductCount int     `json:"productCount"`
}

// Brand represents a cosmetics brand in the catalog
type Brand struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	NameEn      string  `json:"nameEn"`
	Slug        string  `json:"slug"`
	Logo        *string `json:"logo"`
	Description *string `json:"description"`
}

// Product represents a product in the catalog. Prices are in Toman.
type Product struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	NameEn           string   `json:"nameEn"`
	Slug             string   `json:"slug"`
	Description      string   `json:"description"`
	ShortDescription *string  `json:"shortDescription"`
	Price            float64  `json:"price"`
	OriginalPrice    *float64 `json:"originalPrice"`
	DiscountPercent  int      `json:"discountPercent"`
	CategoryID       string   `json:"categoryId"`
	BrandID          string   `json:"brandId"`
	Images           []string `json:"images"`
	Ingredients      *string  `json:"ingredients"`
	HowToUse         *string  `json:"howToUse"`
	Benefits         *string  `json:"benefits"`
	SkinType         *string  `json:"skinType"`
	Rating           float64  `json:"rating"`
	ReviewCount      int      `json:"reviewCount"`
	Stock            int      `json:"stock"`
	IsNew            bool     `json:"isNew"`
	IsBestSeller     bool     `json:"isBestSeller"`
	IsFeatured       bool     `json:"isFeatured"`
}

// Review represents a product review. Reviews are append-only.
type Review struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	UserName  string `json:"userName"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Date      string `json:"date"`
}

// DiscountCode represents a shared promotional code. Codes are stored uppercase.
type DiscountCode struct {
	ID              string `json:"id"`
	Code            string `json:"code"`
	DiscountPercent int    `json:"discountPercent"`
	MaxUses         int    `json:"maxUses"`
	UsedCount       int    `json:"usedCount"`
	IsActive        bool   `json:"isActive"`
}

// IsValid reports whether the code can still be applied
func (dc *DiscountCode) IsValid() bool {
	return dc.IsActive && dc.UsedCount < dc.MaxUses
}

// IsValidRating checks if the rating is valid (1-5)
func (r *Review) IsValidRating() bool {
	return r.Rating >= 1 && r.Rating <= 5
}
