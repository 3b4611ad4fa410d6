/*
Package ngram provides an in-memory n-gram frequency model for next-word
prediction and text generation in Go.

A Model counts, for every sliding window of `order` tokens in its training
text, which token followed and how often. Those counts back two prediction
strategies: a deterministic argmax and a count-weighted random sample, used
both for single-step prediction and for iterative generation. Training is
cumulative across calls and the model never forgets what it has seen.

The transition table is held in insertion order, so the argmax tie-break is
a defined property of the model (earliest-observed candidate wins) rather
than an accident of map iteration.
*/
package ngram
