package fish

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Mode es el modo de búsqueda elegido por quien llama.
// @Enum name, spot, lure
type Mode string

const (
	ModeName Mode = "name"
	ModeSpot Mode = "spot"
	ModeLure Mode = "lure"
)

// Modes en el orden en que se muestran (y se ciclan en la TUI).
var Modes = []Mode{ModeName, ModeSpot, ModeLure}

// SpotPolicy decide qué hacer con los peces marcados "any" en búsqueda por spot.
// @Enum include-any, specific-only
type SpotPolicy string

const (
	PolicyIncludeAny   SpotPolicy = "include-any"
	PolicySpecificOnly SpotPolicy = "specific-only"
)

var (
	ErrInvalidMode   = errors.New("invalid search mode")
	ErrInvalidPolicy = errors.New("invalid spot policy")
)

// Query agrupa los parámetros explícitos de una búsqueda.
// Policy solo aplica a ModeSpot.
type Query struct {
	Mode   Mode
	Text   string
	Policy SpotPolicy
}

// ParseMode: vacío => name.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeName:
		return ModeName, nil
	case ModeSpot:
		return ModeSpot, nil
	case ModeLure:
		return ModeLure, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// ParsePolicy: vacío => include-any.
func ParsePolicy(s string) (SpotPolicy, error) {
	switch SpotPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PolicyIncludeAny:
		return PolicyIncludeAny, nil
	case PolicySpecificOnly:
		return PolicySpecificOnly, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}

// ParseQueryError marca una consulta de spot que no es un spot válido.
// Es interna: los filtros la traducen a "sin resultados".
type ParseQueryError struct {
	Query  string
	Reason string
}

func (e *ParseQueryError) Error() string {
	return fmt.Sprintf("spot query %q: %s", e.Query, e.Reason)
}

// ParseSpot interpreta la consulta como número, con las mismas formas que
// acepta un literal numérico de JS:
// - decimal con espacios alrededor ("3", " 3 ", "03", "3.0", "3e0")
// - enteros con prefijo sin signo ("0x3", "0b11", "0o3")
// - "Infinity" con o sin signo
//
// No numérico o 0 => *ParseQueryError (0 equivale a "no se ingresó spot").
// Valores no enteros, negativos o infinitos se aceptan pero nunca matchean
// (ok=false sin error).
func ParseSpot(query string) (spot int, ok bool, err error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return 0, false, &ParseQueryError{Query: query, Reason: "empty"}
	}

	if base, digits, prefixed := integerPrefix(q); prefixed {
		u, perr := strconv.ParseUint(digits, base, 64)
		switch {
		case errors.Is(perr, strconv.ErrRange):
			// válido pero fuera de rango: ningún spot puede ser tan grande
			return 0, false, nil
		case perr != nil:
			return 0, false, &ParseQueryError{Query: query, Reason: "not a number"}
		case u == 0:
			return 0, false, &ParseQueryError{Query: query, Reason: "zero"}
		case u > math.MaxInt64:
			return 0, false, nil
		}
		return int(u), true, nil
	}

	v, perr := parseDecimal(q)
	if perr != nil {
		return 0, false, &ParseQueryError{Query: query, Reason: "not a number"}
	}
	if v == 0 {
		return 0, false, &ParseQueryError{Query: query, Reason: "zero"}
	}
	// float64(math.MaxInt64) es 2^63, ya fuera de rango
	if math.IsInf(v, 0) || v != math.Trunc(v) || v < 0 || v >= math.MaxInt64 {
		return 0, false, nil
	}
	return int(v), true, nil
}

// integerPrefix detecta 0x/0b/0o (sin signo, como en JS).
func integerPrefix(q string) (base int, digits string, ok bool) {
	if len(q) < 2 || q[0] != '0' {
		return 0, "", false
	}
	switch q[1] {
	case 'x', 'X':
		return 16, q[2:], true
	case 'b', 'B':
		return 2, q[2:], true
	case 'o', 'O':
		return 8, q[2:], true
	}
	return 0, "", false
}

// parseDecimal es ParseFloat restringido a decimal: sin hex float, sin
// "inf"/"nan" y con "Infinity" escrito completo.
func parseDecimal(q string) (float64, error) {
	switch q {
	case "Infinity", "+Infinity":
		return math.Inf(1), nil
	case "-Infinity":
		return math.Inf(-1), nil
	}
	for _, r := range q {
		if !strings.ContainsRune("0123456789+-.eE", r) {
			return 0, strconv.ErrSyntax
		}
	}
	return strconv.ParseFloat(q, 64)
}
