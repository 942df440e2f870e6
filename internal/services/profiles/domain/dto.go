package domain

import "time"

// ProfileInfo summarizes one registered language
type ProfileInfo struct {
	Lang string `json:"lang" example:"en"`
}

// ListResp is the active registry
type ListResp struct {
	Source    string        `json:"source"     example:"dir"`
	Languages []ProfileInfo `json:"languages"`
	NGrams    int           `json:"ngrams"     example:"172345"`
	LoadedAt  time.Time     `json:"loaded_at"`
}

// ReloadResp reports a registry rebuild
type ReloadResp struct {
	Languages int       `json:"languages" example:"55"`
	NGrams    int       `json:"ngrams"    example:"172345"`
	LoadedAt  time.Time `json:"loaded_at"`
}
