package FordJohnson

// Jacobsthal returns J(n) with J(0)=0, J(1)=1, J(k)=J(k-1)+2*J(k-2).
// Negative n yields 0.
func Jacobsthal(n int) int {
	if n <= 1 {
		if n < 0 {
			return 0
		}
		return n
	}
	prev, curr := 0, 1
	for i := 2; i <= n; i++ {
		prev, curr = curr, curr+2*prev
	}
	return curr
}
