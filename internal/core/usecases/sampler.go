// internal/core/usecases/sampler.go
package usecases

import (
	"math/rand/v2"
)

// sampleSeed is fixed so that randomized samples are identical across runs.
const sampleSeed = 42

// selectSample picks up to n representative members. Groups that fit are
// returned whole; otherwise either n distinct members drawn by a generator
// seeded with sampleSeed, or the first n in encounter order. members is never
// modified and the returned slice never aliases it.
func selectSample(members []string, n int, randomize bool) []string {
	if len(members) <= n {
		return append(make([]string, 0, len(members)), members...)
	}
	if !randomize {
		return append(make([]string, 0, n), members[:n]...)
	}

	rng := rand.New(rand.NewPCG(sampleSeed, sampleSeed))

	// partial Fisher-Yates over a virtual index permutation; only touched slots are stored
	moved := make(map[int]int, 2*n)
	at := func(i int) int {
		if v, ok := moved[i]; ok {
			return v
		}
		return i
	}

	out := make([]string, n)
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(members)-i)
		vi, vj := at(i), at(j)
		moved[j] = vi
		out[i] = members[vj]
	}
	return out
}
