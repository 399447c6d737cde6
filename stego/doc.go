// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package stego hides short messages in carrier text and recovers them.

# Methods

Four methods are supported:

  - els: message letters replace every skip-th letter of the carrier,
    starting at the first letter (Equidistant Letter Sequence)
  - acrostic: message letters replace the first letter of successive
    non-blank lines
  - punctuation: the message bytes are written bit by bit as '.' (0) and
    '!' (1) over the carrier's sentence marks
  - null-cipher: message letters replace the first letter of successive
    words

ELS, acrostic and null-cipher messages are reduced to lowercase ASCII letters
before encoding; the replaced letter keeps the case of the carrier letter.
Punctuation carries the raw message bytes.

Short carriers are padded. Acrostic first splits long lines at clause
boundaries and then appends filler lines; null-cipher appends filler words.
Filler material comes from an embedded TOML file and can be replaced with
LoadFillerFile.

# Encoding and Decoding

	res, err := stego.Encode(stego.MethodELS, "meet", carrier, stego.Params{Level: stego.LevelMedium})
	msg, err := stego.Decode(res.EncodedText, res.Instructions)

Decoding with the returned Instructions always reproduces the encoded
message. Encode failures are *EncodeError values; use errors.Is with the Err
kinds or KindName to classify them.

# Blind Analysis

Analyze searches text without instructions. Each analyzer scores its
candidates with the confidence package and candidates are ranked by
descending confidence. With MethodAuto the method is first guessed by Detect;
if that is unclear or finds nothing, all analyzers run concurrently.

# Advisory Metrics

SecurityScore, Assess, CheckCarrier and Profile are heuristics meant to help
a user choose a carrier. None of them provides cryptographic security.
*/
package stego
