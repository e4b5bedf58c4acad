package receipt

import "strconv"

// FormatBill produit la note client. Fonction pure: même entrée, même sortie.
func FormatBill(o Order, l Layout) []string {
	rule := l.rule(l.RuleChar)
	lines := make([]string, 0, 24+2*len(o.Items))

	for _, h := range l.Header {
		lines = append(lines, center(h, l.RuleWidth))
	}

	lines = append(lines,
		rule,
		"Bill No: "+ShortID(o.ID),
		"Date: "+formatDate(o.CreatedAt, l.location()),
		"Customer: "+o.CustomerName,
		"Phone: "+o.Phone,
		rule,
		l.itemHeader(),
		rule,
	)

	for _, it := range o.Items {
		lines = append(lines, l.itemRows(it)...)
	}
	lines = append(lines, rule)

	lines = append(lines, l.totalRow("Subtotal:", l.money(o.Subtotal())))
	if disc := o.discount(); disc.IsPositive() {
		lines = append(lines, l.totalRow("Discount:", "-"+l.money(disc)))
	}
	lines = append(lines, l.totalRow("TOTAL:", l.money(o.GrandTotal())))
	lines = append(lines, rule)

	lines = append(lines, "", "Status: "+o.Status, "")
	if l.ThankYou != "" {
		lines = append(lines, l.ThankYou, "")
	}
	if l.Contact != "" {
		lines = append(lines, "Contact: "+l.Contact)
	}
	if l.Website != "" {
		lines = append(lines, l.Website)
	}
	for i := 0; i < l.FeedLines; i++ {
		lines = append(lines, "")
	}
	return lines
}

func (l Layout) itemHeader() string {
	h := padRight("Item", l.NameWidth) + padLeft("Qty", l.QtyWidth) + padLeft("Rate", l.RateWidth)
	if l.ShowLineTotal {
		h += padLeft("Total", l.TotalWidth)
	}
	return h
}

// itemRows : première ligne complète, puis les suites du nom avec
// quantité, prix et total à blanc
func (l Layout) itemRows(it Item) []string {
	names := wrap(it.Name, l.NameWidth)
	rows := make([]string, 0, len(names))

	first := padRight(names[0], l.NameWidth) +
		padLeft(strconv.Itoa(it.Quantity), l.QtyWidth) +
		padLeft(l.money(it.UnitPrice), l.RateWidth)
	if l.ShowLineTotal {
		first += padLeft(l.money(it.Total()), l.TotalWidth)
	}
	rows = append(rows, first)

	blank := l.QtyWidth + l.RateWidth
	if l.ShowLineTotal {
		blank += l.TotalWidth
	}
	for _, name := range names[1:] {
		rows = append(rows, padRight(name, l.NameWidth)+repeat(" ", blank))
	}
	return rows
}

func (l Layout) totalRow(label, amount string) string {
	return padRight(label, l.LabelWidth) + repeat(" ", l.GapWidth) + padLeft(amount, l.AmountWidth)
}
