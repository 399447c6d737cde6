// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package confidence scores letter sequences for how much they look like
English.

# Scoring

Score returns a value in [0, 100]:

	confidence.Score("MEET") // high
	confidence.Score("QZX")  // 0

The score is additive. Points are awarded for dictionary hits, English
letter frequencies, a plausible vowel ratio, word-like length, common
bigrams and trigrams, moderate letter repetition, and common word shapes
(vowel start, -ING, -ED, ...). Points are taken away for very long runs and
for unusual pairs such as QW or ZX. Sequences shorter than two characters
always score 0.

Every decoder uses the same scorer, so candidate rankings are comparable
across methods. The function is deterministic and safe for concurrent use.
*/
package confidence
