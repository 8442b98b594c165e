package ternopt_test

import (
	"fmt"

	ternopt "github.com/katalvlaran/ternopt"
	"github.com/katalvlaran/ternopt/filter"
)

// ExampleMinChainPartition partitions three nested rules into a single
// chain of their supports.
func ExampleMinChainPartition() {
	rules := []filter.Filter{
		filter.MustParse("**00"),
		filter.MustParse("*100"),
		filter.MustParse("1100"),
	}

	result, err := ternopt.MinChainPartition(rules)
	if err != nil {
		panic(err)
	}
	for _, chain := range result.Chains {
		fmt.Println(chain)
	}
	fmt.Println("rules per chain:", result.Buckets)
	// Output:
	// [{2, 3} {1, 2, 3} {0, 1, 2, 3}]
	// rules per chain: [[0 1 2]]
}

// ExampleBestSubgroup reduces a width-3 classifier to its two most
// informative columns.
func ExampleBestSubgroup() {
	rules := []filter.Filter{
		filter.MustParse("1*0"),
		filter.MustParse("0*1"),
		filter.MustParse("11*"),
		filter.MustParse("00*"),
	}

	result, err := ternopt.BestSubgroup(rules, 2, false, ternopt.AlgoBlockers)
	if err != nil {
		panic(err)
	}
	fmt.Println("bits:", result.Bits)
	fmt.Println("rules:", result.Indices)
	// Output:
	// bits: [0 2]
	// rules: [0 1]
}
