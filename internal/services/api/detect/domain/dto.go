// Package domain holds the detect api contracts
package domain

import (
	"langdetect/internal/core/detector"
)

// DetectInput is the body of both detect endpoints
// Prior replaces the uniform prior; unknown languages in it are ignored
type DetectInput struct {
	Text  string             `json:"text"            validate:"required,max=1000000" example:"Bonjour tout le monde"`
	Seed  *uint64            `json:"seed,omitempty"  example:"42"`
	Prior map[string]float64 `json:"prior,omitempty" validate:"max=512"`
}

// DetectResp names the winning language with the ranked list behind it
type DetectResp struct {
	Lang          string              `json:"lang"          example:"fr"`
	Probabilities []detector.Language `json:"probabilities"`
}

// ProbabilitiesResp is the ranked list alone
type ProbabilitiesResp struct {
	Probabilities []detector.Language `json:"probabilities"`
}

// LanguagesResp lists the registered languages
type LanguagesResp struct {
	Languages []string `json:"languages"`
	Count     int      `json:"count" example:"55"`
}
