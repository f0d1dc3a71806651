package entity

import "time"

// Project is a portfolio entry.
type Project struct {
	ID          string    `bson:"_id,omitempty" json:"_id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Image       string    `bson:"image" json:"image"`
	Tags        []string  `bson:"tags" json:"tags"`
	DemoLink    string    `bson:"demo_link,omitempty" json:"demoLink,omitempty"`
	CodeLink    string    `bson:"code_link,omitempty" json:"codeLink,omitempty"`
	FigmaLink   string    `bson:"figma_link,omitempty" json:"figmaLink,omitempty"`
	Featured    bool      `bson:"featured" json:"featured"`
	Order       int       `bson:"order" json:"order"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}
