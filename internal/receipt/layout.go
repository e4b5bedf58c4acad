package receipt

import (
	"time"

	"github.com/shopspring/decimal"
)

// NumberPolicy indique comment les montants sont tronqués à l'affichage
type NumberPolicy int

const (
	// Whole tronque à l'unité (ticket imprimé)
	Whole NumberPolicy = iota
	// TwoDecimals tronque aux centimes (aperçu, e-mail)
	TwoDecimals
)

func (p NumberPolicy) places() int32 {
	if p == TwoDecimals {
		return 2
	}
	return 0
}

// Format tronque d et l'écrit avec le nombre de décimales de la politique
func (p NumberPolicy) Format(d decimal.Decimal) string {
	places := p.places()
	return d.Truncate(places).StringFixed(places)
}

// Layout regroupe les constantes de mise en page d'un document
type Layout struct {
	RuleWidth int
	RuleChar  string

	// colonnes du tableau d'articles
	NameWidth     int
	QtyWidth      int
	RateWidth     int
	TotalWidth    int
	ShowLineTotal bool

	// bloc des totaux
	LabelWidth  int
	GapWidth    int
	AmountWidth int

	// indentation des lignes de suite sur le KOT
	ContinuationIndent int

	Currency string
	Numbers  NumberPolicy
	Location *time.Location

	Header   []string
	Title    string
	ThankYou string
	Contact  string
	Website  string
	Footer   string
	// lignes vides ajoutées en fin de document pour l'avance papier
	FeedLines int
}

// DefaultBillLayout : rouleau 58 mm, règle de 28 caractères
func DefaultBillLayout() Layout {
	return Layout{
		RuleWidth:     28,
		RuleChar:      "-",
		NameWidth:     9,
		QtyWidth:      3,
		RateWidth:     6,
		TotalWidth:    8,
		ShowLineTotal: true,
		LabelWidth:    14,
		GapWidth:      4,
		AmountWidth:   8,
		Currency:      "₹",
		Numbers:       Whole,
		Location:      time.UTC,
		Header:        []string{"BREWBATTER", "Premium Quality", "Food & Beverages"},
		ThankYou:      "Thank you for your order!",
		Website:       "www.brewbatter.in",
		FeedLines:     4,
	}
}

// DefaultKOTLayout : règle de 30 caractères, noms sur 20 colonnes
func DefaultKOTLayout() Layout {
	return Layout{
		RuleWidth:          30,
		RuleChar:           "=",
		NameWidth:          20,
		ContinuationIndent: 3,
		Location:           time.UTC,
		Title:              "KITCHEN ORDER TICKET",
		Footer:             "Print Time & Verify Order",
	}
}

func (l Layout) location() *time.Location {
	if l.Location == nil {
		return time.UTC
	}
	return l.Location
}

func (l Layout) rule(char string) string {
	if char == "" {
		char = "-"
	}
	return repeat(char, l.RuleWidth)
}

func (l Layout) money(d decimal.Decimal) string {
	return l.Currency + l.Numbers.Format(d)
}
