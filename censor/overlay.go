package censor

// overlay folds the classifier's output back into the working buffer. The
// two strings are walked rune by rune: a '*' in classified wins, every other
// position keeps the buffer's rune, which drops any normalization the
// classifier applied alongside its masking. When the lengths diverge the
// walk stops at the shorter input and the longer tail is dropped.
func overlay(buffer, classified string) string {
	br := []rune(buffer)
	cr := []rune(classified)
	n := len(br)
	if len(cr) < n {
		n = len(cr)
	}
	out := make([]rune, n)
	for i := 0; i < n; i++ {
		if cr[i] == '*' {
			out[i] = '*'
		} else {
			out[i] = br[i]
		}
	}
	return string(out)
}
