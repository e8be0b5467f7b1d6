// Package brackets validates balanced bracket sequences with a stack scan.
//
// Valid recognizes the three ASCII bracket families (), [] and {}. Any other
// rune passes through without affecting the outcome, so annotated strings
// like "f(a[0])" are judged on their bracket skeleton alone.
//
// Complexity: O(len(s)) time, O(len(s)) memory in the worst case.
package brackets

// pairs maps each closing bracket to its opening counterpart.
var pairs = map[rune]rune{
	')': '(',
	']': '[',
	'}': '{',
}

// Valid reports whether every bracket in s closes the most recently opened
// bracket of the same family, and nothing is left open at the end.
func Valid(s string) bool {
	stack := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '(', '[', '{':
			stack = append(stack, r)
		case ')', ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != pairs[r] {
				return false
			}
			stack = stack[:len(stack)-1]
		}
	}

	return len(stack) == 0
}
