package models

// Course is a programme offered by the academy.
type Course struct {
	ID          string   `json:"id" example:"c1"`
	Title       string   `json:"title" example:"JEE Main & Advanced"`
	Description string   `json:"description"`
	Grade       string   `json:"grade" example:"11th & 12th"`
	Subject     string   `json:"subject" example:"Physics, Chemistry, Mathematics"`
	Features    []string `json:"features"`
	Price       string   `json:"price" example:"₹85,000/year"`
	Duration    string   `json:"duration" example:"2 Years"`
	Image       string   `json:"image"`
}

func (c *Course) GetID() string   { return c.ID }
func (c *Course) SetID(id string) { c.ID = id }
