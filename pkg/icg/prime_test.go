package icg

import "testing"

func TestIsPrime(t *testing.T) {
	primes := []uint64{2, 3, 5, 7, 11, 101, 7919, 15485863, 2147483647, 4294967291}
	for _, p := range primes {
		if !isPrime(p) {
			t.Fatalf("%d reported composite", p)
		}
	}
	composites := []uint64{0, 1, 4, 6, 8, 9, 10, 15, 21, 25, 49, 121, 7917, 15485865, 4294967295}
	for _, n := range composites {
		if isPrime(n) {
			t.Fatalf("%d reported prime", n)
		}
	}
	// A prime square lands exactly on the d <= n/d boundary.
	if isPrime(10007 * 10007) {
		t.Fatal("10007^2 reported prime")
	}
}
