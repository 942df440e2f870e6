package domain

// RemoveInput names the language to drop
type RemoveInput struct {
	Lang string `json:"lang" validate:"required,max=32,excludesall=/\\." example:"fr"`
}
