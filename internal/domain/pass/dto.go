package pass

// PassResponse is the transport representation of a single access event.
type PassResponse struct {
	ID         int64  `json:"id"`
	Category   int    `json:"category"`
	Name       string `json:"category_name,omitempty"`
	Time       string `json:"time"`
	PersonCode int    `json:"person_code"`
	PersonName string `json:"person_name"`
	Department string `json:"department,omitempty"`
	Username   string `json:"username"`
}
