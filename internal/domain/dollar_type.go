package domain

import (
	"fmt"
	"strings"
)

// DollarType identifies one peso/dollar quotation published on the page.
type DollarType string

const (
	Oficial DollarType = "oficial"
	Blue    DollarType = "blue"
	MEP     DollarType = "mep"
)

// aliases maps every accepted spelling to its canonical type.
var aliases = map[string]DollarType{
	"oficial":  Oficial,
	"official": Oficial,
	"blue":     Blue,
	"informal": Blue,
	"mep":      MEP,
}

// The page has published the blue quote under both ids.
var containerIDs = map[DollarType][]string{
	Oficial: {"quotation-oficial-desktop"},
	Blue:    {"quotation-informal-desktop", "quotation-blue-desktop"},
	MEP:     {"quotation-mep-desktop"},
}

// AllDollarTypes returns the known types in display order.
func AllDollarTypes() []DollarType {
	return []DollarType{Oficial, Blue, MEP}
}

// ParseDollarType resolves a name or alias, ignoring case and surrounding space.
func ParseDollarType(s string) (DollarType, error) {
	t, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, s)
	}
	return t, nil
}

// ContainerIDs lists the element ids the type may be published under, in
// lookup order. Unknown types fall back to the quotation-<type>-desktop pattern.
func (t DollarType) ContainerIDs() []string {
	if ids, ok := containerIDs[t]; ok {
		return append([]string(nil), ids...)
	}
	return []string{"quotation-" + string(t) + "-desktop"}
}

// Title is the display name used in log and String output.
func (t DollarType) Title() string {
	switch t {
	case Oficial:
		return "Oficial"
	case Blue:
		return "Blue"
	case MEP:
		return "MEP"
	}
	if t == "" {
		return ""
	}
	s := string(t)
	return strings.ToUpper(s[:1]) + s[1:]
}
