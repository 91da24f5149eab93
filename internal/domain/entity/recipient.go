package entity

// Address is a value object embedded in Recipient. The full address is a
// single free-text string; coordinates are optional and only present when
// the address has been geocoded upstream.
type Address struct {
	Full string   `json:"full"`
	Lat  *float64 `json:"lat,omitempty"`
	Lng  *float64 `json:"lng,omitempty"`
}

// Recipient is a delivery destination. The ID is an opaque string assigned
// at creation and never changes; everything else is replaced wholesale on
// update.
type Recipient struct {
	ID      string  `json:"id"`
	Name    *string `json:"name"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
	Memo    *string `json:"memo,omitempty"`
}
