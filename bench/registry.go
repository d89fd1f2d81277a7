package bench

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/boyermoore"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/kmp"
	"github.com/katalvlaran/lvsearch/rabinkarp"
)

// Algorithm names.
const (
	RabinKarp  = "rabin-karp"
	BoyerMoore = "boyer-moore"
	KMP        = "kmp"
)

// Algorithm is a named substring finder.
type Algorithm[E core.Symbol] struct {
	Name string
	Find core.IndexFunc[E]
}

// Algorithms returns the built-in finders in report order.
func Algorithms[E core.Symbol]() []Algorithm[E] {
	return []Algorithm[E]{
		{Name: RabinKarp, Find: rabinkarp.Index[E]},
		{Name: BoyerMoore, Find: boyermoore.Index[E]},
		{Name: KMP, Find: kmp.Index[E]},
	}
}

// Names returns the built-in algorithm names in report order.
func Names() []string {
	return []string{RabinKarp, BoyerMoore, KMP}
}

// Lookup returns the built-in finder registered under name.
func Lookup[E core.Symbol](name string) (Algorithm[E], error) {
	for _, a := range Algorithms[E]() {
		if a.Name == name {
			return a, nil
		}
	}

	return Algorithm[E]{}, fmt.Errorf("%w: %q (known: %v)", ErrUnknownAlgorithm, name, Names())
}
