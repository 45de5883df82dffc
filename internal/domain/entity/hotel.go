package entity

// Hotel and Room are read-only catalog reference data. The booking flow only
// reads them to price a stay and denormalize display fields.

type Room struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Capacity    int      `json:"capacity"`
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
}

type Hotel struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Rating      float64  `json:"rating"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
	Amenities   []string `json:"amenities"`
	Rooms       []Room   `json:"rooms"`
}
