package domain

// Item is a named, quantified thing stored inside a Box. Items have no
// identity of their own; they are addressed by position within their box.
type Item struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// Box is a physical storage container. ID is opaque and never changes once
// assigned; it is the stable reference encoded in QR links.
type Box struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Items    []Item `json:"items"`
}

// Document is the full persisted collection of boxes and the unit of
// storage: every mutation rewrites the whole document. Boxes are ordered
// newest-first.
type Document struct {
	Boxes []*Box `json:"boxes"`
}
