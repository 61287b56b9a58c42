package models

type Stars struct {
	Full  int  `json:"full"`
	Half  bool `json:"half"`
	Empty int  `json:"empty"`
}

type ProductCard struct {
	Product
	PriceLabel         string `json:"price_label"`
	OriginalPriceLabel string `json:"original_price_label,omitempty"`
	SavingsLabel       string `json:"savings_label,omitempty"`
	Stars              Stars  `json:"stars"`
	AffiliateLink      string `json:"affiliate_link"`
}

type HomePage struct {
	Latest     []ProductCard `json:"latest"`
	Flagship   []ProductCard `json:"flagship"`
	Affordable []ProductCard `json:"affordable"`
}

type ListPage struct {
	Count    int           `json:"count"`
	Products []ProductCard `json:"products"`
}

type CategoryPage struct {
	Name      CategoryName  `json:"name"`
	Title     string        `json:"title"`
	Companies []string      `json:"companies"`
	Latest    []ProductCard `json:"latest"`
	Others    []ProductCard `json:"others"`
}

type SearchPage struct {
	Query           string        `json:"query"`
	Mode            SearchMode    `json:"mode"`
	DetectedCompany string        `json:"detected_company,omitempty"`
	Heading         string        `json:"heading"`
	Count           int           `json:"count"`
	Results         []ProductCard `json:"results"`
}

type DetailPage struct {
	Product            DetailedProduct `json:"product"`
	Stars              Stars           `json:"stars"`
	PriceLabel         string          `json:"price_label"`
	OriginalPriceLabel string          `json:"original_price_label,omitempty"`
	SavingsLabel       string          `json:"savings_label,omitempty"`
}

type FeedbackReceipt struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
}
