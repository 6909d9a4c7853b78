// Package dump implements cmd/ffdump's parsing fan-out and its two output
// renderings (text tree, JSON) over a pkg/parser.Result.
package dump

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/fflang/ffc/pkg/parser"
)

// Unit is one input to parse: a human-readable label (a file path, or
// "<expr>" for a -e string) paired with its source text.
type Unit struct {
	Label  string
	Source string
}

// Outcome is the result of parsing one Unit.
type Outcome struct {
	Unit   Unit
	Result *parser.Result
	Err    error
}

// ParseAll parses every unit concurrently — one goroutine per unit,
// fanned in with a sync.WaitGroup — since each parser.Parse call is
// independent and touches no shared state (SPEC_FULL.md §5). Results are
// returned in the same order units were given, not completion order.
func ParseAll(units []Unit) []Outcome {
	outcomes := make([]Outcome, len(units))

	var wg sync.WaitGroup
	for i, u := range units {
		wg.Add(1)
		go func(i int, u Unit) {
			defer wg.Done()
			res, err := parser.Parse(u.Source)
			outcomes[i] = Outcome{Unit: u, Result: res, Err: err}
		}(i, u)
	}
	wg.Wait()

	return outcomes
}

// jsonResult mirrors parser.Result with struct tags, since parser.Result
// itself carries no json tags (it is the in-process AST/generator
// interface, not a wire format — SPEC_FULL.md §6).
type jsonResult struct {
	Functions    []string            `json:"functions"`
	ExternFuncs  []string            `json:"externFuncs"`
	Operators    map[string]string   `json:"operators"`
	Includes     []string            `json:"includes"`
	TypeDefs     map[string]string   `json:"typeDefs"`
	GenericFuncs map[string]string   `json:"genericFuncs"`
	GenericUses  map[string][]string `json:"genericUses"`
}

// ToJSON renders r with stdlib encoding/json — kept stdlib deliberately;
// see DESIGN.md's dropped-dependency note on go-json-experiment/json.
func ToJSON(r *parser.Result) ([]byte, error) {
	jr := jsonResult{
		Operators:    map[string]string{},
		TypeDefs:     map[string]string{},
		GenericFuncs: map[string]string{},
		GenericUses:  map[string][]string{},
	}
	for _, fn := range r.Functions {
		jr.Functions = append(jr.Functions, fn.String())
	}
	for _, ext := range r.ExternFuncs {
		jr.ExternFuncs = append(jr.ExternFuncs, ext.String())
	}
	for key, op := range r.Operators {
		jr.Operators[key] = op.String()
	}
	for _, inc := range r.Includes {
		jr.Includes = append(jr.Includes, inc.String())
	}
	for name, td := range r.TypeDefs {
		jr.TypeDefs[name] = td.String()
	}
	for name, gfn := range r.GenericFuncs {
		jr.GenericFuncs[name] = gfn.String()
	}
	for name, uses := range r.GenericUses {
		for _, call := range uses {
			jr.GenericUses[name] = append(jr.GenericUses[name], call.String())
		}
	}

	return json.MarshalIndent(jr, "", "  ")
}

// ToText renders r as a tree-shaped listing, one section per collection,
// using ast nodes' own String() methods (the teacher's debug-printing
// pattern) rather than reflecting over the structs.
func ToText(r *parser.Result) string {
	var b strings.Builder

	writeSection(&b, "functions", stringSlice(r.Functions))
	writeSection(&b, "externFuncs", stringSlice(r.ExternFuncs))
	writeSection(&b, "operators", sortedMapValues(r.Operators))
	writeSection(&b, "includes", stringSlice(r.Includes))
	writeSection(&b, "typeDefs", sortedMapValues(r.TypeDefs))
	writeSection(&b, "genericFuncs", sortedMapValues(r.GenericFuncs))

	if len(r.GenericUses) > 0 {
		fmt.Fprintf(&b, "genericUses:\n")
		names := make([]string, 0, len(r.GenericUses))
		for name := range r.GenericUses {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			for _, call := range r.GenericUses[name] {
				fmt.Fprintf(&b, "  %s -> %s\n", name, call.String())
			}
		}
	}

	return b.String()
}

type stringer interface{ String() string }

func stringSlice[T stringer](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.String()
	}

	return out
}

func sortedMapValues[T stringer](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = m[k].String()
	}

	return out
}

func writeSection(b *strings.Builder, name string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(b, "%s:\n", name)
	for _, line := range lines {
		fmt.Fprintf(b, "  %s\n", line)
	}
}
