// Command credrank scores a weighted contribution graph: it builds the
// Markov process graph, solves for the stationary distribution, and reports
// cred per contribution and per participant-epoch.
package main

func main() {
	Execute()
}
