package petservice

// Pet is the pet directory's projection of a registered pet
type Pet struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	OwnerID int64  `json:"owner_id"`
	Species string `json:"species"`
}
