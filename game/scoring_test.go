package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statuses(row []Cell) []Status {
	out := make([]Status, len(row))
	for i, c := range row {
		out[i] = c.Status
	}
	return out
}

func TestScore(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		desc     string
		target   string
		guess    string
		expected []Status
	}{
		{
			desc:     "all correct",
			target:   "WORLD",
			guess:    "WORLD",
			expected: []Status{StatusCorrect, StatusCorrect, StatusCorrect, StatusCorrect, StatusCorrect},
		},
		{
			desc:     "all absent",
			target:   "WORLD",
			guess:    "STENT",
			expected: []Status{StatusAbsent, StatusAbsent, StatusAbsent, StatusAbsent, StatusAbsent},
		},
		{
			desc:   "duplicate guess letters consume target counts greedily",
			target: "ALLOW",
			guess:  "LOLLY",
			// A:1 L:2 O:1 W:1. Pass 1: index 2 L is correct (consumes one L).
			// Pass 2 left to right: index 0 L takes the last L, index 1 O is
			// present, index 3 L finds no L remaining, Y absent.
			expected: []Status{StatusPresent, StatusPresent, StatusCorrect, StatusAbsent, StatusAbsent},
		},
		{
			desc:   "correct position wins over later misplaced duplicate",
			target: "BERRY",
			guess:  "ERROR",
			// R appears twice in BERRY: index 2 is an exact match, the R at
			// index 1 takes the remaining count, the trailing R gets nothing.
			expected: []Status{StatusPresent, StatusPresent, StatusCorrect, StatusAbsent, StatusAbsent},
		},
		{
			desc:     "single letter present once despite double guess",
			target:   "PIZZA",
			guess:    "ABBAS",
			expected: []Status{StatusPresent, StatusAbsent, StatusAbsent, StatusAbsent, StatusAbsent},
		},
		{
			desc:     "short words",
			target:   "CAT",
			guess:    "TAC",
			expected: []Status{StatusPresent, StatusCorrect, StatusPresent},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			row := Score(tc.guess, tc.target)
			require.Len(t, row, len(tc.target))
			assert.Equal(t, tc.expected, statuses(row))
			for i, cell := range row {
				assert.Equal(t, string(tc.guess[i]), cell.Letter)
			}
		})
	}
}

// The count of correct+present marks for any letter never exceeds that
// letter's count in the target, and a position is correct iff the letters
// match there.
func TestScore_DuplicateLetterBound(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"ALLOW", "LOLLY"},
		{"BERRY", "ERROR"},
		{"SPEED", "ERASE"},
		{"GEESE", "EEEEE"},
		{"ABBEY", "BABES"},
		{"LLAMA", "ALLAY"},
	}

	for _, pair := range pairs {
		target, guess := pair[0], pair[1]
		row := Score(guess, target)

		credited := map[string]int{}
		for i, cell := range row {
			if guess[i] == target[i] {
				assert.Equal(t, StatusCorrect, cell.Status, "%s vs %s index %d", guess, target, i)
			} else {
				assert.NotEqual(t, StatusCorrect, cell.Status, "%s vs %s index %d", guess, target, i)
			}
			if cell.Status == StatusCorrect || cell.Status == StatusPresent {
				credited[cell.Letter]++
			}
		}
		for letter, n := range credited {
			assert.LessOrEqual(t, n, strings.Count(target, letter),
				"letter %s overcredited for guess %s target %s", letter, guess, target)
		}
	}
}

func TestKeyboardStatuses_OnlyUpgrades(t *testing.T) {
	t.Parallel()

	agg := map[string]Status{}

	UpgradeLetterStatuses(agg, Score("STONE", "ALLOW"))
	assert.Equal(t, StatusPresent, agg["O"])
	assert.Equal(t, StatusAbsent, agg["S"])

	// O moves to correct and must stay there afterwards.
	UpgradeLetterStatuses(agg, Score("FLOOR", "ALLOW"))
	assert.Equal(t, StatusCorrect, agg["O"])
	assert.Equal(t, StatusCorrect, agg["L"])

	UpgradeLetterStatuses(agg, Score("STONE", "ALLOW"))
	assert.Equal(t, StatusCorrect, agg["O"], "status must never downgrade")

	board := [][]Cell{
		Score("STONE", "ALLOW"),
		Score("FLOOR", "ALLOW"),
		make([]Cell, 5), // unscored row contributes nothing
	}
	derived := KeyboardStatuses(board)
	assert.Equal(t, StatusCorrect, derived["O"])
	assert.Equal(t, StatusCorrect, derived["L"])
	assert.Equal(t, StatusAbsent, derived["S"])
	assert.NotContains(t, derived, "")
}
