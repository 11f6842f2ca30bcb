package repository

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapa os curingas do LIKE para buscar o termo literalmente
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
