package search

import (
	"log"
	"regexp"
	"strconv"
)

var durationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseDuration converte um token de duração ISO-8601 (PT[nH][nM][nS])
// em segundos. Componentes ausentes valem 0. Token malformado produz 0
// com warning no log; nunca retorna erro.
func ParseDuration(token string) int {
	m := durationRe.FindStringSubmatch(token)
	if m == nil {
		log.Printf("aviso: token de duração inválido: %q", token)
		return 0
	}

	hours := atoiOrZero(m[1])
	minutes := atoiOrZero(m[2])
	seconds := atoiOrZero(m[3])

	return hours*3600 + minutes*60 + seconds
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
