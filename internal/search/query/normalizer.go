package query

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stopwords em espanhol removidas da query antes da busca.
// Casamento por palavra inteira, nunca por substring.
var stopwords = map[string]bool{
	"a": true, "el": true, "la": true, "los": true, "las": true,
	"de": true, "del": true, "que": true, "y": true, "o": true,
}

var punctRe = regexp.MustCompile(`[,.\-!?:;]`)

// Normalize converte uma query crua na chave canônica de busca:
// lowercase, remoção de acentos, pontuação e stopwords, espaços
// colapsados. Função pura e total; entrada vazia produz string vazia.
// A saída serve tanto de chave de cache quanto de texto de busca.
func Normalize(raw string) string {
	s := strings.ToLower(raw)
	s = RemoveAccents(s)
	s = punctRe.ReplaceAllString(s, " ")

	parts := strings.Fields(s)
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if !stopwords[part] {
			kept = append(kept, part)
		}
	}

	return strings.Join(kept, " ")
}

// Terms quebra uma query já normalizada em termos individuais.
func Terms(normalized string) []string {
	return strings.Fields(normalized)
}

// RemoveAccents remove acentos de uma string.
func RemoveAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
