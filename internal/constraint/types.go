package constraint

import (
	"errors"
	"fmt"
	"strings"

	"taxalign/internal/node"
	"taxalign/internal/taxonomy"
)

//go:generate go tool stringer -type=Recursion,Direction -output=types_string.go

// Recursion selects how far structure is followed on one side.
type Recursion int

const (
	// Immediate considers direct parents or children only.
	Immediate Recursion = iota
	// Recursive considers every depth.
	Recursive
)

// Direction selects which relation an HH type compares.
type Direction int

const (
	// Hyper compares hypernym structure.
	Hyper Direction = iota
	// Hypo compares hyponym structure.
	Hypo
	// Both requires agreement above and below the synset.
	Both
)

// ErrUnknownType is returned for an HH type code that does not parse.
var ErrUnknownType = errors.New("unknown hyper/hypo type")

// HHType is one (source recursion, target recursion, direction) triple.
type HHType struct {
	Source    Recursion
	Target    Recursion
	Direction Direction
}

// Code returns the canonical short code, e.g. "ir-hyper".
func (t HHType) Code() string {
	return recursionCode(t.Source) + recursionCode(t.Target) + "-" + directionCode(t.Direction)
}

// String implements fmt.Stringer.
func (t HHType) String() string { return t.Code() }

func recursionCode(r Recursion) string {
	if r == Recursive {
		return "r"
	}

	return "i"
}

func directionCode(d Direction) string {
	switch d {
	case Hypo:
		return "hypo"
	case Both:
		return "both"
	default:
		return "hyper"
	}
}

// ParseHHType parses a code of the form "<s><t>-<dir>" where s and t are
// "i" (immediate) or "r" (recursive) and dir is hyper, hypo or both.
// Parsing is case-insensitive.
func ParseHHType(code string) (HHType, error) {
	c := strings.ToLower(strings.TrimSpace(code))

	rec, dir, ok := strings.Cut(c, "-")
	if !ok || len(rec) != 2 {
		return HHType{}, fmt.Errorf("%w: %q", ErrUnknownType, code)
	}

	var t HHType

	for i, ch := range rec {
		var r Recursion

		switch ch {
		case 'i':
			r = Immediate
		case 'r':
			r = Recursive
		default:
			return HHType{}, fmt.Errorf("%w: %q", ErrUnknownType, code)
		}

		if i == 0 {
			t.Source = r
		} else {
			t.Target = r
		}
	}

	switch dir {
	case "hyper":
		t.Direction = Hyper
	case "hypo":
		t.Direction = Hypo
	case "both":
		t.Direction = Both
	default:
		return HHType{}, fmt.Errorf("%w: %q", ErrUnknownType, code)
	}

	return t, nil
}

// AllHHTypes returns the twelve HH types in canonical order.
func AllHHTypes() []HHType {
	out := make([]HHType, 0, 12)

	for _, d := range []Direction{Hyper, Hypo, Both} {
		for _, s := range []Recursion{Immediate, Recursive} {
			for _, t := range []Recursion{Immediate, Recursive} {
				out = append(out, HHType{Source: s, Target: t, Direction: d})
			}
		}
	}

	return out
}

// WeightedType is an enabled HH type with its relative weight.
type WeightedType struct {
	Type   HHType
	Weight float64
}

// AllWeighted enables every HH type with the same weight.
func AllWeighted(weight float64) []WeightedType {
	all := AllHHTypes()
	out := make([]WeightedType, len(all))

	for i, t := range all {
		out[i] = WeightedType{Type: t, Weight: weight}
	}

	return out
}

// Mappings is read-only access to confirmed source→target mappings.
type Mappings interface {
	Lookup(source taxonomy.SynsetID) (taxonomy.SynsetID, bool)
}

// Constraint adjusts the weights of one node from the confirmed mappings.
// Implementations may only call AddWeight on n.
type Constraint interface {
	Name() string
	Apply(m Mappings, n *node.Node)
}
