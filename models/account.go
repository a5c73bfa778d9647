package models

// Language is a supported interface language
type Language string

const (
	LangEnglish Language = "en"
	LangHindi   Language = "hi"
	LangMarathi Language = "mr"
)

// SupportedLanguage reports whether lang is one of the interface languages
func SupportedLanguage(lang Language) bool {
	switch lang {
	case LangEnglish, LangHindi, LangMarathi:
		return true
	}
	return false
}

// Account represents a user account
type Account struct {
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"` // Never serialize password hash
	Language     Language `json:"language"`
}
