package ranking

// Levenshtein calcula a distância de edição entre duas strings:
// o número mínimo de inserções, remoções e substituições de um
// caractere para transformar uma na outra.
func Levenshtein(a, b string) int {
	if len(a) == 0 {
		return len([]rune(b))
	}
	if len(b) == 0 {
		return len([]rune(a))
	}

	runesA := []rune(a)
	runesB := []rune(b)

	// Duas linhas em vez da matriz completa.
	prev := make([]int, len(runesB)+1)
	curr := make([]int, len(runesB)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(runesA); i++ {
		curr[0] = i

		for j := 1; j <= len(runesB); j++ {
			cost := 0
			if runesA[i-1] != runesB[j-1] {
				cost = 1
			}

			curr[j] = min(
				prev[j]+1,      // remoção
				curr[j-1]+1,    // inserção
				prev[j-1]+cost, // substituição
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(runesB)]
}

// NormalizedDistance normaliza a distância de edição para [0, 1]:
// 0 = idênticas, 1 = completamente diferentes.
func NormalizedDistance(a, b string) float64 {
	lenA := len([]rune(a))
	lenB := len([]rune(b))

	longest := max(lenA, lenB)
	if longest == 0 {
		return 0
	}

	return float64(Levenshtein(a, b)) / float64(longest)
}
