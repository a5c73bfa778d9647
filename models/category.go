package models

// LegalCategory is one entry of the static classification table: a trigger
// keyword with the statute reference, guidance and proof checklist attached
// to it. Categories are fixed at build time and never persisted.
type LegalCategory struct {
	Key                string   `json:"key"`
	StatuteCode        string   `json:"statute"`
	Description        string   `json:"description"`
	RecommendedActions []string `json:"recommended_actions"`
	RequiredProofs     []string `json:"required_proofs"`
}
