package ternopt

import (
	"github.com/katalvlaran/ternopt/chains"
	"github.com/katalvlaran/ternopt/filter"
	"github.com/katalvlaran/ternopt/logx"
)

// mapPartitionIndices buckets rule indices by chain: for every input
// rule (not every unique support) it looks up the chain its support
// belongs to and appends the rule's index to that chain's bucket.
func mapPartitionIndices(partition [][]filter.Support, supports []filter.Support) [][]int {
	chainOf := make(map[string]int)
	for c, chain := range partition {
		for _, s := range chain {
			chainOf[s.Key()] = c
		}
	}

	buckets := make([][]int, len(partition))
	for i, s := range supports {
		if c, ok := chainOf[s.Key()]; ok {
			buckets[c] = append(buckets[c], i)
		}
	}

	return buckets
}

// MinChainPartition partitions one rule table into the minimum number
// of chains of the strict-subset order over its unique supports.
//
// An empty table yields a nil result with a nil error — the "no result"
// sentinel; callers must check for it.
func MinChainPartition(table []filter.Filter) (*Partition, error) {
	if len(table) == 0 {
		return nil, nil
	}

	supports := filter.ToSupports(table)
	unique := filter.SelectUnique(supports)
	part := chains.MinChainPartition(unique)

	return &Partition{
		Chains:  part,
		Buckets: mapPartitionIndices(part, supports),
	}, nil
}

// MinBoundedChainPartition partitions every group so that the total
// number of chains across all groups stays within maxChains where the
// support structure permits, paying the cheapest chain heads first.
// Group weights are the support multiplicities within each table.
//
// An empty group list yields a nil result with a nil error; a group
// with no rules is ErrEmptyClassifier.
func MinBoundedChainPartition(tables [][]filter.Filter, maxChains int) (*BoundedPartition, error) {
	if len(tables) == 0 {
		return nil, nil
	}

	nSupports := make([][]filter.Support, len(tables))
	unique := make([][]filter.Support, len(tables))
	weights := make([][]int, len(tables))
	for g, table := range tables {
		if len(table) == 0 {
			return nil, ErrEmptyClassifier
		}
		nSupports[g] = filter.ToSupports(table)
		unique[g], weights[g] = filter.SelectUniqueWithWeights(nSupports[g])
	}

	parts := chains.MinBoundedChainPartition(unique, weights, maxChains)

	result := &BoundedPartition{Groups: make([]Partition, len(tables))}
	for g := range tables {
		result.Groups[g] = Partition{
			Chains:  parts[g],
			Buckets: mapPartitionIndices(parts[g], nSupports[g]),
		}
	}

	return result, nil
}

// MinChainPartitionWithExpansion merges supports group by group while
// the memory budget permits, then partitions each group's expanded
// supports into minimum chains. Alongside the per-chain buckets, every
// input rule's expanded support is reported so callers can rewrite the
// rules accordingly.
//
// An empty group list yields a nil result with a nil error; a group
// with no rules is ErrEmptyClassifier.
func MinChainPartitionWithExpansion(tables [][]filter.Filter, maxMemory int) (*ExpandedPartition, error) {
	if len(tables) == 0 {
		return nil, nil
	}

	nSupports := make([][]filter.Support, len(tables))
	unique := make([][]filter.Support, len(tables))
	weights := make([][]int, len(tables))
	for g, table := range tables {
		if len(table) == 0 {
			return nil, ErrEmptyClassifier
		}
		nSupports[g] = filter.ToSupports(table)
		unique[g], weights[g] = filter.SelectUniqueWithWeights(nSupports[g])
	}

	expanded, expansions := chains.MinChainPartitionWithExpansion(unique, weights, maxMemory)
	for g := range tables {
		logx.L().Info("expansion finished for group",
			"group", g, "old_size", len(unique[g]), "new_size", len(expanded[g]))
	}

	result := &ExpandedPartition{Groups: make([]ExpandedGroup, len(tables))}
	for g := range tables {
		part := chains.MinChainPartition(expanded[g])

		expSupports := make([]filter.Support, len(nSupports[g]))
		for i, s := range nSupports[g] {
			cur, ok := expansions[g].Lookup(s)
			if !ok {
				panic("ternopt: expansion map lost a support binding")
			}
			expSupports[i] = cur
		}

		result.Groups[g] = ExpandedGroup{
			Partition: Partition{
				Chains:  part,
				Buckets: mapPartitionIndices(part, expSupports),
			},
			Expanded: expSupports,
		}
	}

	return result, nil
}
