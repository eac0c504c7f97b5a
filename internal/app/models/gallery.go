package models

// GalleryItem is a photo shown in the public gallery.
type GalleryItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Image       string `json:"image"`
}

func (g *GalleryItem) GetID() string   { return g.ID }
func (g *GalleryItem) SetID(id string) { g.ID = id }

// Topper is a featured high scoring student.
type Topper struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Rank        string `json:"rank"`
	Exam        string `json:"exam"`
	Score       string `json:"score"`
	Course      string `json:"course"`
	Testimonial string `json:"testimonial"`
	Image       string `json:"image"`
}

func (t *Topper) GetID() string   { return t.ID }
func (t *Topper) SetID(id string) { t.ID = id }
