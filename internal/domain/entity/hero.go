package entity

import "time"

// HeroContent is the single document shown at the top of the landing page.
type HeroContent struct {
	ID          string    `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string    `bson:"title" json:"title"`
	Subtitle    string    `bson:"subtitle" json:"subtitle"`
	Description string    `bson:"description" json:"description"`
	ImageURL    string    `bson:"image_url" json:"imageUrl"`
	CTAText     string    `bson:"cta_text" json:"ctaText"`
	CTALink     string    `bson:"cta_link" json:"ctaLink"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt,omitempty"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt,omitempty"`
}

const (
	DefaultCTAText = "Contact Me"
	DefaultCTALink = "#contact"
)

// DefaultHeroContent is served until the owner saves their own hero section.
func DefaultHeroContent() HeroContent {
	return HeroContent{
		Title:       "Creative Developer & Designer",
		Subtitle:    "Crafting beautiful and functional digital experiences",
		Description: "I help businesses grow by crafting amazing web experiences",
		ImageURL:    "/images/hero-default.jpg",
		CTAText:     "Let's Work Together",
		CTALink:     DefaultCTALink,
	}
}
