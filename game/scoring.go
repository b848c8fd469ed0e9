package game

import "strings"

// Score evaluates one guess against the target using the two-pass rule.
// Pass 1 credits exact position matches and consumes the target's letter
// counts; pass 2 walks the remaining indices left to right, crediting
// "present" while the letter still has remaining count and "absent" after.
// A repeated letter therefore never earns more correct+present marks than
// its count in the target. Both inputs must be upper-case and equal length;
// the session layer validates that before calling.
func Score(guess, target string) []Cell {
	g := []rune(guess)
	t := []rune(target)
	row := make([]Cell, len(g))

	remaining := make(map[rune]int, len(t))
	for _, r := range t {
		remaining[r]++
	}

	for i := range g {
		row[i] = Cell{Letter: string(g[i])}
		if g[i] == t[i] {
			row[i].Status = StatusCorrect
			remaining[g[i]]--
		}
	}

	for i := range g {
		if row[i].Status == StatusCorrect {
			continue
		}
		if remaining[g[i]] > 0 {
			row[i].Status = StatusPresent
			remaining[g[i]]--
		} else {
			row[i].Status = StatusAbsent
		}
	}

	return row
}

var statusRank = map[Status]int{
	StatusEmpty:   0,
	StatusAbsent:  1,
	StatusPresent: 2,
	StatusCorrect: 3,
}

// UpgradeLetterStatuses folds a scored row into the per-letter keyboard
// aggregate. A letter's status only ever upgrades absent→present→correct.
func UpgradeLetterStatuses(agg map[string]Status, row []Cell) {
	for _, cell := range row {
		if cell.Letter == "" {
			continue
		}
		if statusRank[cell.Status] > statusRank[agg[cell.Letter]] {
			agg[cell.Letter] = cell.Status
		}
	}
}

// KeyboardStatuses derives the aggregate letter statuses from every scored
// row of a board. Unscored rows (status "empty" cells) contribute nothing.
func KeyboardStatuses(board [][]Cell) map[string]Status {
	agg := make(map[string]Status)
	for _, row := range board {
		scored := false
		for _, cell := range row {
			if cell.Status != StatusEmpty {
				scored = true
				break
			}
		}
		if scored {
			UpgradeLetterStatuses(agg, row)
		}
	}
	return agg
}

func isAlphaWord(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func normalizeWord(w string) string {
	return strings.ToUpper(strings.TrimSpace(w))
}
