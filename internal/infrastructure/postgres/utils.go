package postgres

import (
	"errors"
	"strings"
	"unicode"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// foldSearch normaliza un término de búsqueda: minúsculas y sin diacríticos,
// para que "Café" y "cafe" encuentren lo mismo.
func foldSearch(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return folded
}

// unaccent expresión SQL que baja a minúsculas y quita tildes de una columna,
// contraparte en la DB de foldSearch (sin depender de extensiones).
func unaccent(col string) string {
	return "translate(lower(" + col + "), 'áàäâéèëêíìïîóòöôúùüûñ', 'aaaaeeeeiiiioooouuuun')"
}

// likePattern arma el patrón ILIKE-style para un término ya normalizado.
func likePattern(term string) string {
	return "%" + foldSearch(term) + "%"
}
