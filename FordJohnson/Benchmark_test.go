package FordJohnson

import (
	"math/rand"
	"sort"
	"testing"

	"PmergeMe/FordJohnson/chain"
)

const N = 3000

func makeRandomInts(n int) []int {
	rand.Seed(42)
	ints := make([]int, n)
	for i := 0; i < n; i++ {
		ints[i] = rand.Intn(n)
	}
	return ints
}

func makeSortedInts(n int) []int {
	ints := make([]int, n)
	for i := 0; i < n; i++ {
		ints[i] = i
	}
	return ints
}

func BenchmarkSortInts(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ints := makeRandomInts(N)
		b.StartTimer()
		sort.Ints(ints)
	}
}

func BenchmarkFordJohnsonVector(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ints := makeRandomInts(N)
		b.StartTimer()
		SortWith(ints, chain.KindVector)
	}
}

func BenchmarkFordJohnsonDeque(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ints := makeRandomInts(N)
		b.StartTimer()
		SortWith(ints, chain.KindDeque)
	}
}

func BenchmarkFordJohnsonSorted(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		ints := makeSortedInts(N)
		b.StartTimer()
		Sort(ints)
	}
}

func TestIsSortedAfterSort(t *testing.T) {
	for i := 0; i < 10; i++ {
		ints := makeRandomInts(N + i)
		Sort(ints)
		if !IsSorted(ints) {
			t.Error("Not sorted")
		}
	}
}
