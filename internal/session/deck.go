package session

import (
	"github.com/DanRulev/wordweaver/internal/models"
)

// AllSet is the study set holding every word.
const AllSet = "all"

var typeSets = []struct {
	name string
	typ  models.WordType
}{
	{"prefixes", models.TypePrefix},
	{"roots", models.TypeRoot},
	{"suffixes", models.TypeSuffix},
}

// SetNames lists the selectable study sets: "all", the built-in type sets, then server-defined sets.
func (s State) SetNames() []string {
	names := []string{AllSet}
	for _, ts := range typeSets {
		names = append(names, ts.name)
	}
	for _, set := range s.Sets {
		names = append(names, set.Name)
	}
	return names
}

// StudySet resolves a set by name against the current words. Unknown names yield nil.
func (s State) StudySet(name string) []models.WordCard {
	if name == AllSet {
		return s.Words
	}

	for _, ts := range typeSets {
		if ts.name == name {
			var out []models.WordCard
			for _, w := range s.Words {
				if w.Type == ts.typ {
					out = append(out, w)
				}
			}
			return out
		}
	}

	for _, set := range s.Sets {
		if set.Name != name {
			continue
		}
		byID := make(map[string]models.WordCard, len(s.Words))
		for _, w := range s.Words {
			byID[w.ID] = w
		}
		var out []models.WordCard
		for _, id := range set.WordIDs {
			if w, ok := byID[id]; ok {
				out = append(out, w)
			}
		}
		return out
	}

	return nil
}

// ActiveDeck is the selected study set, or "all" when the selection is absent or empty.
func (s State) ActiveDeck() []models.WordCard {
	if s.ActiveSet == "" || s.ActiveSet == AllSet {
		return s.Words
	}
	if deck := s.StudySet(s.ActiveSet); len(deck) > 0 {
		return deck
	}
	return s.Words
}

// Next returns the cursor after i in a deck of n cards.
func Next(i, n int) int {
	if n <= 0 {
		return i
	}
	return (i + 1) % n
}

// Prev returns the cursor before i in a deck of n cards.
func Prev(i, n int) int {
	if n <= 0 {
		return i
	}
	return (i - 1 + n) % n
}

func uniqueWords(words []models.WordCard) []models.WordCard {
	seen := make(map[string]bool, len(words))
	out := make([]models.WordCard, 0, len(words))
	for _, w := range words {
		if seen[w.ID] {
			continue
		}
		seen[w.ID] = true
		out = append(out, w)
	}
	return out
}
