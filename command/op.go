// Package command parses textual stack operations and executes them against a string stack.
package command

import (
	"sort"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Op is a stack operation name.
type Op string

const (
	Push  Op = "push"
	Pop   Op = "pop"
	Peek  Op = "peek"
	Size  Op = "size"
	Empty Op = "empty"
	Clear Op = "clear"
	Show  Op = "show"
	Help  Op = "help"
)

// Ops lists every operation in help order.
var Ops = []Op{Push, Pop, Peek, Size, Empty, Clear, Show, Help}

var descriptions = map[Op]string{
	Push:  "push <value>  put value on top of the stack",
	Pop:   "pop           remove and print the top value",
	Peek:  "peek          print the top value without removing it",
	Size:  "size          print the number of values",
	Empty: "empty         print whether the stack holds no values",
	Clear: "clear         remove every value",
	Show:  "show          list values from top to bottom",
	Help:  "help          show this help",
}

var aliases = map[string]Op{
	"isempty":  Empty,
	"is_empty": Empty,
	"len":      Size,
	"count":    Size,
	"top":      Peek,
	"ls":       Show,
	"dump":     Show,
	"?":        Help,
}

// Describe returns the one-line usage of op.
func (o Op) Describe() string {
	return descriptions[o]
}

// lookup resolves a canonical name or alias.
func lookup(name string) mo.Option[Op] {
	name = strings.ToLower(name)
	if op, ok := aliases[name]; ok {
		return mo.Some(op)
	}
	if lo.Contains(Ops, Op(name)) {
		return mo.Some(Op(name))
	}
	return mo.None[Op]()
}

// names returns canonical names followed by sorted aliases.
func names() []string {
	keys := lo.Keys(aliases)
	sort.Strings(keys)
	return append(lo.Map(Ops, func(o Op, _ int) string { return string(o) }), keys...)
}

// Suggest returns the operation closest to name when it is within two edits.
func Suggest(name string) mo.Option[Op] {
	name = strings.ToLower(name)
	closest := lo.MinBy(names(), func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})

	if closest == "" || levenshtein.Distance(name, closest) > 2 {
		return mo.None[Op]()
	}
	return lookup(closest)
}

// Complete returns canonical operation names fuzzily matching prefix, sorted by edit distance.
func Complete(prefix string) []string {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	candidates := lo.Map(Ops, func(o Op, _ int) string { return string(o) })
	if prefix == "" {
		return candidates
	}

	ranks := fuzzy.RankFind(prefix, candidates)
	sort.Sort(ranks)
	return lo.Map(ranks, func(r fuzzy.Rank, _ int) string { return r.Target })
}
