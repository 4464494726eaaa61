package subscription

// Record is one persisted recurring-delivery commitment.
// ID matches the originating product/cart line; the display fields are
// carried through unchanged for rendering and replaced wholesale on re-upsert.
type Record struct {
	ID          string `json:"id"`
	ItemID      string `json:"itemid"`
	DisplayName string `json:"displayname"`
	FileURL     string `json:"file_url"`
	Interval    string `json:"interval"`  // months between deliveries, positive-integer string
	CreatedAt   int64  `json:"createdAt"` // milliseconds since epoch
}
