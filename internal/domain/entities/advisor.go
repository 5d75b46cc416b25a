package entities

// Advisor is the shop employee that authors estimates. Estimates reference
// advisors by id; the display name is resolved on read.
type Advisor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
