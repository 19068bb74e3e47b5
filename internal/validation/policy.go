package validation

import (
	"strings"

	"github.com/campaign-desk/backend/internal/models"
)

// prohibitedWords is policy data, not logic: entries cover spam, fraud,
// adult content, gambling and high-pressure marketing language. Deployments
// extend the list through configuration without touching the pipeline.
var prohibitedWords = []string{
	"casino",
	"lottery",
	"jackpot",
	"betting",
	"gambling",
	"viagra",
	"xxx",
	"porn",
	"escort",
	"get rich",
	"free money",
	"guaranteed win",
	"miracle cure",
	"act now",
	"risk free",
}

// PolicyChecker is the server-only content gate. It holds the prohibited
// word list centrally so clients can neither read it nor bypass it.
type PolicyChecker struct {
	words []string
}

func NewPolicyChecker(extra []string) *PolicyChecker {
	words := make([]string, 0, len(prohibitedWords)+len(extra))
	words = append(words, prohibitedWords...)
	for _, w := range extra {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			words = append(words, w)
		}
	}
	return &PolicyChecker{words: words}
}

// Validate rejects a name whose lower-cased form contains any listed term.
// The message never names the matched word.
func (p *PolicyChecker) Validate(c models.Campaign) []Error {
	lower := strings.ToLower(c.Name)
	for _, w := range p.words {
		if strings.Contains(lower, w) {
			return []Error{policyError(FieldName, "Campaign name contains prohibited words")}
		}
	}
	return nil
}
