package knuthbendix_test

import (
	"fmt"

	"github.com/katalvlaran/semigroups/knuthbendix"
	"github.com/katalvlaran/semigroups/presentation"
	"github.com/katalvlaran/semigroups/word"
)

// ExampleKnuthBendix completes the presentation <a | a^3 = e> and confirms
// it denotes the cyclic group of order 3.
func ExampleKnuthBendix() {
	alphabet, err := word.NewAlphabet('a')
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	alphabet.SetContainsEmptyWord(true)

	pres := presentation.New(alphabet)
	if err := pres.AddRule(word.Word("aaa"), word.Word{}); err != nil {
		fmt.Println("error:", err)
		return
	}

	kb := knuthbendix.Init(knuthbendix.TwoSided, pres)
	if err := kb.Run(); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(kb.Confluent())

	n, status := kb.NumberOfClasses(alphabet.Letters())
	fmt.Println(n, status)

	equal, err := kb.EqualTo(word.Word("aaaa"), word.Word("a"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(equal)

	// Output:
	// true
	// 3 finite
	// true
}
