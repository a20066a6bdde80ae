package bench

import "sort"

// Comparison summarises one case against the fastest case of its suite.
type Comparison struct {
	Suite string `json:"suite"`
	Case  string `json:"case"`
	Runs  int    `json:"runs"`

	// NsPerOp is the mean over all runs of the case.
	NsPerOp float64 `json:"ns_per_op"`

	// Relative is NsPerOp divided by the fastest case's NsPerOp; the
	// fastest case has 1.
	Relative float64 `json:"relative"`

	// OpsPerSec is the throughput implied by NsPerOp.
	OpsPerSec float64 `json:"ops_per_sec"`

	Fastest bool `json:"fastest"`
}

// Compare averages repeated results per case and ranks cases within each
// suite, fastest first. Suites keep their first-seen order.
func Compare(results []Result) []Comparison {
	type key struct{ suite, name string }

	var order []key
	sums := make(map[key]float64)
	runs := make(map[key]int)
	for _, r := range results {
		k := key{r.Suite, r.Case}
		if _, ok := runs[k]; !ok {
			order = append(order, k)
		}
		sums[k] += r.NsPerOp
		runs[k]++
	}

	var suites []string
	bySuite := make(map[string][]Comparison)
	for _, k := range order {
		if _, ok := bySuite[k.suite]; !ok {
			suites = append(suites, k.suite)
		}
		mean := sums[k] / float64(runs[k])
		c := Comparison{Suite: k.suite, Case: k.name, Runs: runs[k], NsPerOp: mean}
		if mean > 0 {
			c.OpsPerSec = 1e9 / mean
		}
		bySuite[k.suite] = append(bySuite[k.suite], c)
	}

	out := make([]Comparison, 0, len(order))
	for _, s := range suites {
		cs := bySuite[s]
		sort.SliceStable(cs, func(i, j int) bool { return cs[i].NsPerOp < cs[j].NsPerOp })
		best := cs[0].NsPerOp
		for i := range cs {
			if best > 0 {
				cs[i].Relative = cs[i].NsPerOp / best
			}
			cs[i].Fastest = i == 0
		}
		out = append(out, cs...)
	}
	return out
}
