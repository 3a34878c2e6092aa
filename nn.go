// Package ptsa - nearest-neighbor initial tour.
//
// nearestNeighborTour is grounded on original_source/src/Code/initialization.py's
// nearest_neighbor_initial_solution, expressed in the teacher's explicit
// index-loop style (see tour.go's MakeTourFromPermutation in the teacher's
// tsp package for the same "scan with declared loop variables" idiom).
package ptsa

// nearestNeighborTour builds a greedy tour starting at city 0, always
// stepping to the closest unvisited city; ties are broken by smallest city
// index because the scan below compares with strict '<' in ascending order.
//
// Complexity: O(n^2) time, O(n) space.
func nearestNeighborTour(ec edgeCosts) []int {
	n := ec.n
	tour := make([]int, 0, n)
	visited := make([]bool, n)

	tour = append(tour, 0)
	visited[0] = true
	current := 0

	var step int
	for step = 1; step < n; step++ {
		best := -1
		var bestDist float64
		var candidate int
		for candidate = 0; candidate < n; candidate++ {
			if visited[candidate] {
				continue
			}
			d := ec.at(current, candidate)
			if best == -1 || d < bestDist {
				best = candidate
				bestDist = d
			}
		}
		tour = append(tour, best)
		visited[best] = true
		current = best
	}

	return tour
}
