package template

import (
	"math"
	"strings"
)

var (
	units    = []string{"zero", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove"}
	teens    = []string{"dez", "onze", "doze", "treze", "quatorze", "quinze", "dezesseis", "dezessete", "dezoito", "dezenove"}
	tens     = []string{"", "", "vinte", "trinta", "quarenta", "cinquenta", "sessenta", "setenta", "oitenta", "noventa"}
	hundreds = []string{"", "cento", "duzentos", "trezentos", "quatrocentos", "quinhentos", "seiscentos", "setecentos", "oitocentos", "novecentos"}
)

// SpelledOutLimit is the first amount no longer spelled out in words.
const SpelledOutLimit = 1_000_000

// SpellOutBRL writes an amount in words as Brazilian currency
// ("mil e duzentos reais e cinquenta centavos"). Amounts of one million reais
// or more are rendered as grouped digits instead.
func SpellOutBRL(amount float64) string {
	if amount < 0 {
		return "menos " + SpellOutBRL(-amount)
	}
	totalCents := int64(math.Round(amount * 100))
	reais := totalCents / 100
	cents := totalCents % 100

	if reais >= SpelledOutLimit {
		return FormatBRL(amount)
	}

	if reais == 0 && cents == 0 {
		return "zero reais"
	}

	var parts []string
	switch {
	case reais == 1:
		parts = append(parts, "um real")
	case reais > 1:
		parts = append(parts, spellInteger(reais)+" reais")
	}
	switch {
	case cents == 1:
		parts = append(parts, "um centavo")
	case cents > 1:
		parts = append(parts, spellInteger(cents)+" centavos")
	}
	return strings.Join(parts, " e ")
}

// spellInteger handles 1..999999.
func spellInteger(n int64) string {
	if n == 0 {
		return units[0]
	}
	thousands := n / 1000
	rest := n % 1000

	var head string
	switch {
	case thousands == 1:
		head = "mil"
	case thousands > 1:
		head = spellBelowThousand(thousands) + " mil"
	}
	if rest == 0 {
		return head
	}
	tail := spellBelowThousand(rest)
	if head == "" {
		return tail
	}
	// "mil e cem", "mil e vinte", but "mil duzentos e trinta".
	if rest < 100 || rest%100 == 0 {
		return head + " e " + tail
	}
	return head + " " + tail
}

func spellBelowThousand(n int64) string {
	if n == 100 {
		return "cem"
	}
	var parts []string
	if h := n / 100; h > 0 {
		parts = append(parts, hundreds[h])
	}
	r := n % 100
	switch {
	case r == 0:
	case r < 10:
		parts = append(parts, units[r])
	case r < 20:
		parts = append(parts, teens[r-10])
	default:
		t := tens[r/10]
		if u := r % 10; u > 0 {
			t += " e " + units[u]
		}
		parts = append(parts, t)
	}
	return strings.Join(parts, " e ")
}
