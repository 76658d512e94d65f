package primekit_test

import (
	"fmt"

	"github.com/adamluzsi/primes/pkg/primekit"
)

func ExampleSequence() {
	var seq primekit.Sequence[uint64]
	for v := range seq.All() {
		if 20 < v {
			break
		}
		fmt.Print(v, " ")
	}
	// Output: 2 3 5 7 11 13 17 19
}

func ExampleNew() {
	g := primekit.New[uint8](primekit.WithCeiling[uint8](5))

	first, suspended := g.Init()
	fmt.Println(first)

	var phase primekit.Phase[uint8] = suspended
	for {
		s, ok := phase.(primekit.Suspended[uint8])
		if !ok {
			break
		}
		v, next, ok := s.Resume()
		if ok {
			fmt.Println(v)
		}
		phase = next
	}
	fmt.Println(phase.Kind(), phase.Primes())
	// Output:
	// 2
	// 3
	// 5
	// completed [2 3 5]
}
