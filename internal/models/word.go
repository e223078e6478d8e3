package models

import "strings"

type WordType string

const (
	TypePrefix WordType = "prefix"
	TypeRoot   WordType = "root"
	TypeSuffix WordType = "suffix"
)

func (t WordType) Valid() bool {
	switch t {
	case TypePrefix, TypeRoot, TypeSuffix:
		return true
	}
	return false
}

type Origin string

const (
	OriginGreek Origin = "Greek"
	OriginLatin Origin = "Latin"
)

func (o Origin) Valid() bool {
	return o == OriginGreek || o == OriginLatin
}

// ParseOrigin accepts an origin in any letter case. Unknown values are kept as given.
func ParseOrigin(s string) Origin {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "greek":
		return OriginGreek
	case "latin":
		return OriginLatin
	}
	return Origin(s)
}

type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

func (d Difficulty) Valid() bool {
	switch d {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

// WordCard is one vocabulary unit as served by GET /api/words.
type WordCard struct {
	ID         string     `json:"id"`
	Root       string     `json:"root"`
	Type       WordType   `json:"type"`
	Origin     Origin     `json:"origin"`
	Meaning    string     `json:"meaning"`
	Definition string     `json:"definition"`
	Examples   []string   `json:"examples"`
	Difficulty Difficulty `json:"difficulty"`
	Points     int        `json:"points"`
	Category   string     `json:"category,omitempty"`
	Image      string     `json:"image,omitempty"`
}

// WordInput is the body of create-word and update-word.
type WordInput struct {
	Root       string     `json:"root" validate:"required"`
	Type       WordType   `json:"type" validate:"required,oneof=prefix root suffix"`
	Origin     Origin     `json:"origin" validate:"required,oneof=Greek Latin"`
	Meaning    string     `json:"meaning" validate:"required"`
	Definition string     `json:"definition"`
	Examples   []string   `json:"examples"`
	Difficulty Difficulty `json:"difficulty" validate:"required,oneof=beginner intermediate advanced"`
	Points     int        `json:"points" validate:"min=0,max=100"`
	Category   string     `json:"category,omitempty"`
	Image      string     `json:"image,omitempty"`
}

type WordStats struct {
	TotalCount  int
	PrefixCount int
	RootCount   int
	SuffixCount int
}

func CountWords(words []WordCard) WordStats {
	stats := WordStats{TotalCount: len(words)}
	for _, w := range words {
		switch w.Type {
		case TypePrefix:
			stats.PrefixCount++
		case TypeRoot:
			stats.RootCount++
		case TypeSuffix:
			stats.SuffixCount++
		}
	}
	return stats
}
