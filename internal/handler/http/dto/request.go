package dto

import (
	"github.com/mikiasgoitom/portfolio/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/portfolio/internal/usecase/contract"
)

type CreateTagRequest struct {
	Name string `json:"name" binding:"required,tagname"`
}

type CreateBlogPostRequest struct {
	Title   string   `json:"title" binding:"required,min=3,max=150"`
	Content string   `json:"content" binding:"required"`
	Image   string   `json:"image" binding:"required"`
	Tags    []string `json:"tags"`
	Status  string   `json:"status" binding:"omitempty,oneof=draft published"`
}

func (r CreateBlogPostRequest) ToInput() usecasecontract.CreateBlogPostInput {
	return usecasecontract.CreateBlogPostInput{
		Title:   r.Title,
		Content: r.Content,
		Image:   r.Image,
		Tags:    r.Tags,
		Status:  entity.BlogPostStatus(r.Status),
	}
}

// UpdateBlogPostRequest is a partial update. ID is only read by PUT /blog,
// where the id travels in the body.
type UpdateBlogPostRequest struct {
	ID      string    `json:"id"`
	Title   *string   `json:"title" binding:"omitempty,min=3,max=150"`
	Content *string   `json:"content"`
	Image   *string   `json:"image"`
	Tags    *[]string `json:"tags"`
	Status  *string   `json:"status" binding:"omitempty,oneof=draft published"`
}

func (r UpdateBlogPostRequest) ToInput() usecasecontract.UpdateBlogPostInput {
	input := usecasecontract.UpdateBlogPostInput{
		Title:   r.Title,
		Content: r.Content,
		Image:   r.Image,
		Tags:    r.Tags,
	}
	if r.Status != nil {
		status := entity.BlogPostStatus(*r.Status)
		input.Status = &status
	}
	return input
}

type ProjectRequest struct {
	Title       string   `json:"title" binding:"required,min=3,max=100"`
	Description string   `json:"description" binding:"required,min=10,max=1000"`
	Image       string   `json:"image" binding:"required"`
	Tags        []string `json:"tags"`
	DemoLink    string   `json:"demoLink" binding:"omitempty,httpurl"`
	CodeLink    string   `json:"codeLink" binding:"omitempty,httpurl"`
	FigmaLink   string   `json:"figmaLink" binding:"omitempty,httpurl"`
	Featured    bool     `json:"featured"`
	Order       int      `json:"order"`
}

func (r ProjectRequest) ToInput() usecasecontract.ProjectInput {
	return usecasecontract.ProjectInput{
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		Tags:        r.Tags,
		DemoLink:    r.DemoLink,
		CodeLink:    r.CodeLink,
		FigmaLink:   r.FigmaLink,
		Featured:    r.Featured,
		Order:       r.Order,
	}
}

type UpdateProjectRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	Tags        *[]string `json:"tags"`
	DemoLink    *string   `json:"demoLink"`
	CodeLink    *string   `json:"codeLink"`
	FigmaLink   *string   `json:"figmaLink"`
	Featured    *bool     `json:"featured"`
	Order       *int      `json:"order"`
}

func (r UpdateProjectRequest) ToInput() usecasecontract.UpdateProjectInput {
	return usecasecontract.UpdateProjectInput{
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		Tags:        r.Tags,
		DemoLink:    r.DemoLink,
		CodeLink:    r.CodeLink,
		FigmaLink:   r.FigmaLink,
		Featured:    r.Featured,
		Order:       r.Order,
	}
}

type HeroRequest struct {
	Title       string `json:"title" binding:"required"`
	Subtitle    string `json:"subtitle" binding:"required"`
	Description string `json:"description" binding:"required"`
	ImageURL    string `json:"imageUrl" binding:"omitempty,httpurl"`
	CTAText     string `json:"ctaText"`
	CTALink     string `json:"ctaLink"`
}

type SubmitMessageRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,max=5000"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,containsuppercase,containslowercase,containsdigit"`
}

// LoginRequest accepts either an email or a username as identifier.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}
