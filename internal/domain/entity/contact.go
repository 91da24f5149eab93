package entity

// Contact is an address-book entry for a frequent sender. BusinessName acts
// as a natural dedup key for the find-or-create flow; uniqueness is advisory
// and not enforced by the storage layer.
type Contact struct {
	ID           string  `json:"id"`
	BusinessName string  `json:"businessName"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	Note         *string `json:"note,omitempty"`
}
