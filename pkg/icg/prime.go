package icg

// isPrime reports whether n is prime, by trial division over the odd
// numbers. The d <= n/d loop bound avoids overflowing d*d for n close to
// the top of the uint64 range.
func isPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for d := uint64(3); d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
