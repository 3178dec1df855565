package generator

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Character class alphabets.
const (
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	NumberChars    = "0123456789"
	SpecialChars   = "@#$%*&~."
)

// charClass is a fixed alphabet with its relative selection weight.
type charClass struct {
	name     string
	alphabet string
	weight   float64
}

// classes lists the character classes in guarantee order.
// Special characters are drawn less often so passwords stay easy to type.
var classes = [...]charClass{
	{name: "lowercase", alphabet: LowercaseChars, weight: 1},
	{name: "uppercase", alphabet: UppercaseChars, weight: 1},
	{name: "numbers", alphabet: NumberChars, weight: 0.9},
	{name: "special", alphabet: SpecialChars, weight: 0.3},
}

// Options controls password generation.
type Options struct {
	// Length is the requested password length. If it is smaller than the
	// number of enabled classes, the result has one character per class.
	Length int `yaml:"length"`

	Lowercase bool `yaml:"lowercase"`
	Uppercase bool `yaml:"uppercase"`
	Numbers   bool `yaml:"numbers"`
	Special   bool `yaml:"special"`

	// Ignore lists characters that must never appear in the password.
	Ignore string `yaml:"ignore"`
}

// DefaultOptions returns options for a 16 character password using every
// character class.
func DefaultOptions() Options {
	return Options{
		Length:    16,
		Lowercase: true,
		Uppercase: true,
		Numbers:   true,
		Special:   true,
	}
}

// enabled returns the selected classes in guarantee order.
func (o Options) enabled() []charClass {
	flags := [len(classes)]bool{o.Lowercase, o.Uppercase, o.Numbers, o.Special}
	selected := make([]charClass, 0, len(classes))
	for i, on := range flags {
		if on {
			selected = append(selected, classes[i])
		}
	}
	return selected
}

// Validate reports why o cannot produce a password, if it cannot.
//
// A class counts as fully excluded when every character of its complete
// alphabet is in Ignore.
func (o Options) Validate() error {
	selected := o.enabled()
	if len(selected) == 0 {
		return ErrNoClassSelected
	}
	for _, c := range selected {
		if removeChars(c.alphabet, o.Ignore) == "" {
			return fmt.Errorf("%w: %s", ErrFullyExcluded, c.name)
		}
	}
	return nil
}

// removeChars returns raw without any character present in ignore,
// preserving order.
func removeChars(raw, ignore string) string {
	if ignore == "" {
		return raw
	}
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if !strings.ContainsRune(ignore, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// pool is the usable alphabet of one enabled class.
type pool struct {
	chars  string
	weight float64
}

// weightTable selects a pool with probability proportional to its weight.
type weightTable struct {
	pools      []pool
	cumulative []float64
	total      float64
}

// newWeightTable builds the cumulative table over non-empty pools only,
// so an empty pool can never be drawn.
func newWeightTable(pools []pool) weightTable {
	t := weightTable{}
	for _, p := range pools {
		if p.chars == "" || p.weight <= 0 {
			continue
		}
		t.total += p.weight
		t.pools = append(t.pools, p)
		t.cumulative = append(t.cumulative, t.total)
	}
	return t
}

// pick maps u in [0,1) to exactly one pool.
func (t weightTable) pick(u float64) pool {
	r := u * t.total
	for i, bound := range t.cumulative {
		if r < bound {
			return t.pools[i]
		}
	}
	// u*total can round up to total
	return t.pools[len(t.pools)-1]
}

// randSource is the randomness a Generator draws from.
// *rand.Rand satisfies it.
type randSource interface {
	Float64() float64
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// globalRand draws from the process-wide math/rand/v2 source, which is safe
// for concurrent use.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int { return rand.IntN(n) }
func (globalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// Generator produces random passwords.
//
// Randomness is not cryptographic. A Generator created WithRand is not safe
// for concurrent use because *rand.Rand is not.
type Generator struct {
	rnd randSource
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand makes the generator draw from r, e.g. a seeded source in tests.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rnd = r
		}
	}
}

// New creates a Generator. Without options it uses process-wide randomness.
func New(opts ...Option) *Generator {
	g := &Generator{rnd: globalRand{}}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultGenerator = New()

// Generate creates a password with the process-wide generator.
func Generate(opts Options) (string, error) {
	return defaultGenerator.Generate(opts)
}

// Generate creates a password according to opts.
//
// The password contains at least one character of every enabled class, then
// is filled up to opts.Length by drawing a class by weight (lowercase 1,
// uppercase 1, numbers 0.9, special 0.3) and a character uniformly from that
// class. The result is shuffled so the guaranteed characters do not sit at
// fixed positions. Its length is max(opts.Length, enabled classes).
func (g *Generator) Generate(opts Options) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}

	selected := opts.enabled()
	pools := make([]pool, 0, len(selected))
	for _, c := range selected {
		pools = append(pools, pool{chars: removeChars(c.alphabet, opts.Ignore), weight: c.weight})
	}

	password := make([]byte, 0, max(opts.Length, len(pools)))
	for _, p := range pools {
		if p.chars == "" {
			continue
		}
		password = append(password, p.chars[g.rnd.IntN(len(p.chars))])
	}

	table := newWeightTable(pools)
	for len(password) < opts.Length && len(table.pools) > 0 {
		p := table.pick(g.rnd.Float64())
		password = append(password, p.chars[g.rnd.IntN(len(p.chars))])
	}

	g.rnd.Shuffle(len(password), func(i, j int) {
		password[i], password[j] = password[j], password[i]
	})

	return string(password), nil
}
