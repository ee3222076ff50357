package search

// Product is an n-ary mixed-radix product. Index 0 is all zeros and the
// last digit varies fastest, so indices run in lexicographic order.
type Product struct {
	radices []int
	size    int
}

// NewProduct returns the product of the given radices. An empty product
// has exactly one element.
func NewProduct(radices ...int) Product {
	size := 1
	for _, r := range radices {
		size *= r
	}
	return Product{radices: append([]int(nil), radices...), size: size}
}

// Len is the number of tuples.
func (p Product) Len() int { return p.size }

// Dims is the number of digits per tuple.
func (p Product) Dims() int { return len(p.radices) }

// Decode writes tuple i into digits, which must have Dims elements.
func (p Product) Decode(i int, digits []int) {
	for d := len(p.radices) - 1; d >= 0; d-- {
		r := p.radices[d]
		digits[d] = i % r
		i /= r
	}
}

// Combinations is the set of k-subsets of 0..n-1 in lexicographic order,
// addressed by index without being materialized.
type Combinations struct {
	n, k int
	size int
}

// NewCombinations returns the k-subsets of n items. It is empty when k is
// outside 0..n.
func NewCombinations(n, k int) Combinations {
	return Combinations{n: n, k: k, size: binomial(n, k)}
}

// Len is C(n, k).
func (c Combinations) Len() int { return c.size }

// K is the subset size, the length Decode writes.
func (c Combinations) K() int { return c.k }

// Decode writes subset i into out in increasing order. Each position takes
// the smallest element whose block of completions still contains i.
func (c Combinations) Decode(i int, out []int) {
	x := 0
	for j := 0; j < c.k; j++ {
		for {
			block := binomial(c.n-x-1, c.k-j-1)
			if i < block {
				break
			}
			i -= block
			x++
		}
		out[j] = x
		x++
	}
}

// Permutations is the set of orderings of 0..n-1 in lexicographic order,
// decoded from the factorial number system.
type Permutations struct {
	n    int
	size int
}

// NewPermutations returns the orderings of n items. n must be small enough
// for n! to fit an int.
func NewPermutations(n int) Permutations {
	if n < 0 {
		return Permutations{}
	}
	return Permutations{n: n, size: factorial(n)}
}

// Len is n!.
func (p Permutations) Len() int { return p.size }

// N is the permutation length, the length Decode writes.
func (p Permutations) N() int { return p.n }

// Decode writes permutation i into out.
func (p Permutations) Decode(i int, out []int) {
	var used uint64
	f := p.size
	for j := 0; j < p.n; j++ {
		f /= p.n - j
		d := i / f
		i %= f
		for x := 0; x < p.n; x++ {
			if used&(1<<x) != 0 {
				continue
			}
			if d == 0 {
				out[j] = x
				used |= 1 << x
				break
			}
			d--
		}
	}
}

func binomial(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	k = min(k, n-k)
	r := 1
	for i := 1; i <= k; i++ {
		r = r * (n - k + i) / i
	}
	return r
}

func factorial(n int) int {
	r := 1
	for i := 2; i <= n; i++ {
		r *= i
	}
	return r
}
