package receipt

import "fmt"

// FormatKOT produit le ticket cuisine, sans aucun prix
func FormatKOT(o Order, l Layout) []string {
	rule := l.rule(l.RuleChar)
	thin := repeat("-", l.RuleWidth)
	lines := make([]string, 0, 16+2*len(o.Items))

	lines = append(lines, rule)
	if l.Title != "" {
		lines = append(lines, center(l.Title, l.RuleWidth))
	}
	lines = append(lines,
		rule,
		"Order ID: "+ShortID(o.ID),
		"Time: "+formatDate(o.CreatedAt, l.location()),
		"Customer: "+o.CustomerName,
		rule,
		"ITEMS TO PREPARE:",
		thin,
	)

	indent := repeat(" ", l.ContinuationIndent)
	for i, it := range o.Items {
		names := wrap(it.Name, l.NameWidth)
		lines = append(lines, fmt.Sprintf("%d. %s x%d", i+1, names[0], it.Quantity))
		for _, name := range names[1:] {
			lines = append(lines, indent+name)
		}
	}
	lines = append(lines, thin, "")

	note := o.Note
	if note == "" {
		note = "None"
	}
	lines = append(lines, "Special Instructions: "+note, "")

	if l.Footer != "" {
		lines = append(lines, rule, l.Footer, rule)
	}
	return lines
}
