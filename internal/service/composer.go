package service

import (
	"fmt"
	"strconv"
	"strings"

	"observatoire/internal/model"
	"observatoire/internal/utils"
)

// Fixed reply texts. The UI renders *bold* and "• " bullets itself.
const (
	onboardingMessage = "👋 *Bonjour !* Je suis l'assistant immobilier de l'observatoire.\n" +
		"Dites-moi ce que vous cherchez, par exemple :\n" +
		"• \"Je cherche un appartement 3 chambres à Dakar\"\n" +
		"• \"Studio meublé à louer à Ouakam\"\n" +
		"Je transformerai votre demande en filtres de recherche."

	fallbackMessage = "Je n'ai pas trouvé de critère dans votre message. Essayez par exemple :\n" +
		"• \"Appartement à louer à Dakar\"\n" +
		"• \"Villa à vendre budget 150 millions\"\n" +
		"• \"Terrain à Diamniadio moins de 20 millions\"\n" +
		"• \"Studio meublé 3 chambres à Guédiawaye\""

	callToAction = "👉 Touchez une suggestion pour affiner votre recherche."
)

// Compound recommendation thresholds (FCFA).
const (
	rentalLowBudget = 500_000
	saleLowBudget   = 30_000_000
	saleHighBudget  = 100_000_000
)

// ResponseComposer turns an extracted intent into a conversational reply:
// message text, clickable suggestion chips and a filter patch the search
// service merges into the caller's current filters.
type ResponseComposer struct {
	lib *PatternLibrary
}

// NewResponseComposer creates a composer over the given pattern library.
func NewResponseComposer(lib *PatternLibrary) *ResponseComposer {
	return &ResponseComposer{lib: lib}
}

// Compose builds the reply for one user message. A greeting wins over any
// extracted content; an empty extraction yields the example-query fallback.
func (c *ResponseComposer) Compose(message string, intent model.QueryIntent) model.ComposedReply {
	if c.lib.greeting.MatchString(utils.Normalize(message)) {
		return model.ComposedReply{
			Message:     onboardingMessage,
			Suggestions: []model.Suggestion{},
		}
	}

	if intent.IsEmpty() {
		return model.ComposedReply{
			Message:     fallbackMessage,
			Suggestions: []model.Suggestion{},
		}
	}

	var segments []string
	var suggestions []model.Suggestion
	add := func(segment string, s model.Suggestion) {
		segments = append(segments, segment)
		suggestions = append(suggestions, s)
	}

	if intent.Budget != nil {
		// The budget alone hints at the transaction side, same 1.5M FCFA
		// threshold as the classifier's tie-break. The chip carries its own
		// label even when the transaction chip points the same way.
		hinted := model.Rental
		if *intent.Budget >= TieBreakPrice {
			hinted = model.Sale
		}
		add(
			fmt.Sprintf("• Budget : *%s FCFA*", formatFCFA(*intent.Budget)),
			model.Suggestion{
				Kind:  model.SuggestionStatus,
				Value: hinted.Label(),
				Label: hinted.Label() + "s uniquement",
				Icon:  statusIcon(hinted),
			},
		)
	}

	if intent.TransactionType != nil {
		t := *intent.TransactionType
		add(
			fmt.Sprintf("• Transaction : *%s*", t.Label()),
			model.Suggestion{
				Kind:  model.SuggestionStatus,
				Value: t.Label(),
				Label: "Chercher en " + t.Label(),
				Icon:  statusIcon(t),
			},
		)
	}

	if intent.PropertyType != nil {
		add(
			fmt.Sprintf("• Type de bien : *%s*", *intent.PropertyType),
			model.Suggestion{
				Kind:  model.SuggestionPropertyType,
				Value: *intent.PropertyType,
				Label: *intent.PropertyType,
				Icon:  "🏘️",
			},
		)
	}

	if intent.Bedrooms != nil {
		add(
			fmt.Sprintf("• Chambres : *%d*", *intent.Bedrooms),
			model.Suggestion{
				Kind:  model.SuggestionBedrooms,
				Value: strconv.Itoa(*intent.Bedrooms),
				Label: fmt.Sprintf("%d chambres", *intent.Bedrooms),
				Icon:  "🛏️",
			},
		)
	}

	if intent.City != nil {
		add(
			fmt.Sprintf("• Ville : *%s*", *intent.City),
			model.Suggestion{
				Kind:  model.SuggestionCity,
				Value: *intent.City,
				Label: *intent.City,
				Icon:  "📍",
			},
		)
	}

	var sb strings.Builder
	sb.WriteString("Voici ce que j'ai compris :\n")
	sb.WriteString(strings.Join(segments, "\n"))

	if line := c.recommendation(intent); line != "" {
		sb.WriteString("\n")
		sb.WriteString(line)
	}

	if len(suggestions) > 0 {
		sb.WriteString("\n")
		sb.WriteString(callToAction)
	}

	return model.ComposedReply{
		Message:     sb.String(),
		Suggestions: suggestions,
		FilterPatch: intent,
	}
}

// recommendation returns at most one budget-driven advice line, only when
// both the budget and the transaction side are known.
func (c *ResponseComposer) recommendation(intent model.QueryIntent) string {
	if intent.Budget == nil || intent.TransactionType == nil {
		return ""
	}
	budget := *intent.Budget

	switch *intent.TransactionType {
	case model.Rental:
		if budget < rentalLowBudget {
			return "💡 Avec ce budget, pensez aux studios et chambres meublées."
		}
	case model.Sale:
		if budget < saleLowBudget {
			return "💡 Avec ce budget, visez un appartement ou un terrain à viabiliser."
		}
		if budget >= saleHighBudget {
			return "💡 Ce budget ouvre les villas de standing et les immeubles de rapport."
		}
	}
	return ""
}

func statusIcon(t model.TransactionType) string {
	if t == model.Rental {
		return "🔑"
	}
	return "🏠"
}

// formatFCFA renders an amount with thin thousand groups ("25 000 000").
func formatFCFA(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return strings.Join(parts, " ")
}
