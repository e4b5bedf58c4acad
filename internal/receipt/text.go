package receipt

import (
	"strings"
	"time"
	"unicode/utf8"
)

// DateFormat correspond à l'affichage en-IN : 19/10/2026, 08:05 pm
const DateFormat = "02/01/2006, 03:04 pm"

// Text joint les lignes pour un rendu monospace
func Text(lines []string) string {
	return strings.Join(lines, "\n")
}

func repeat(s string, n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(s, n)
}

// padRight tronque ou complète à droite, en runes
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n > width {
		return string([]rune(s)[:width])
	}
	return s + repeat(" ", width-n)
}

// padLeft tronque ou aligne à droite, en runes
func padLeft(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n > width {
		return string([]rune(s)[:width])
	}
	return repeat(" ", width-n) + s
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return repeat(" ", (width-n)/2) + s
}

// wrap coupe text en lignes d'au plus width runes. Coupure gloutonne sur
// les espaces; un mot plus long que width est coupé net.
func wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, word := range words {
		for utf8.RuneCountInString(word) > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			r := []rune(word)
			lines = append(lines, string(r[:width]))
			word = string(r[width:])
		}
		if word == "" {
			continue
		}
		switch {
		case current == "":
			current = word
		case utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// ShortID : 8 premiers caractères de l'id, en majuscules (numéro de note)
func ShortID(id string) string {
	r := []rune(id)
	if len(r) > 8 {
		r = r[:8]
	}
	return strings.ToUpper(string(r))
}

func formatDate(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format(DateFormat)
}
