package utils

// CompetitionRanks assigns 1-based ranks to scores that are already sorted
// from best to worst. Equal scores share a rank and the next distinct score
// skips ahead, so 120, 100, 100, 90 ranks as 1, 2, 2, 4.
func CompetitionRanks(scores []int) []uint16 {
	ranks := make([]uint16, len(scores))
	for i := range scores {
		if i > 0 && scores[i] == scores[i-1] {
			ranks[i] = ranks[i-1]
			continue
		}
		ranks[i] = uint16(i + 1)
	}
	return ranks
}
