package httphandler

type Product struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Price            float64  `json:"price"`
	Currency         string   `json:"currency"`
	ImageURL         string   `json:"imageUrl"`
	Category         string   `json:"category"`
	ReadyToShip      bool     `json:"readyToShip"`
	Tags             []string `json:"tags"`
	ShippingPromise  string   `json:"shippingPromise,omitempty"`
	Badges           []string `json:"badges"`
	FeaturedInWidget bool     `json:"featuredInWidget"`
}
