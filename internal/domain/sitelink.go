package domain

// SiteLink is one entry of the homepage's link grid.
type SiteLink struct {
	Name string `json:"name" validate:"required"`
	Link string `json:"link" validate:"required,url"`
	Icon string `json:"icon" validate:"required"`
}
