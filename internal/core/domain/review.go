package domain

// Review is a transient representation of a review fetched from the dealer
// service. The document shape is owned by that service, so it stays a loose
// map; the gateway only reads the text and attaches a sentiment label
// in-flight.
type Review map[string]any

// Text returns the free-text body of the review, or "" when absent.
func (r Review) Text() string {
	s, _ := r["review"].(string)
	return s
}

// SetSentiment attaches the derived sentiment label. An empty label is
// valid and means analysis was unavailable for this item.
func (r Review) SetSentiment(label string) {
	r["sentiment"] = label
}
