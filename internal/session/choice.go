package session

import "strings"

// Rand supplies the randomness for quiz picks and option order.
type Rand interface {
	Intn(n int) int
}

// DecoyPool holds the wrong answers offered next to a card's meaning.
var DecoyPool = []string{
	"water",
	"earth",
	"light",
	"life",
	"time",
	"sound",
	"self",
	"many, much",
	"small",
	"far, distant",
	"study of",
	"fear of",
	"to write",
	"to carry",
	"to see",
	"to hear",
	"to speak",
	"to break",
	"to build",
	"star",
}

// Choice is a multiple-choice question on one card.
type Choice struct {
	CardIndex int      `json:"card_index"`
	Options   []string `json:"options"`
	Correct   string   `json:"correct"`
	Selected  string   `json:"selected,omitempty"`
	Answered  bool     `json:"answered"`
	Success   bool     `json:"success"`
}

// ChoiceOptions returns the correct meaning and two decoys from DecoyPool, shuffled.
func ChoiceOptions(correct string, rng Rand) []string {
	pool := make([]string, 0, len(DecoyPool))
	for _, d := range DecoyPool {
		if !strings.EqualFold(strings.TrimSpace(d), strings.TrimSpace(correct)) {
			pool = append(pool, d)
		}
	}

	options := []string{correct}
	for len(options) < 3 && len(pool) > 0 {
		i := rng.Intn(len(pool))
		options = append(options, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
	}

	for i := len(options) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		options[i], options[j] = options[j], options[i]
	}

	return options
}
