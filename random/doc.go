// Package random supplies the randomness used by the randomized helpers in
// arr and num.
//
// Every randomized helper has two forms: a plain one that draws from the
// process-wide generator, and a "With" form that takes a [Source]:
//
//	arr.Shuffle(items)                         // process-wide generator
//	arr.ShuffleWith(random.New("seed"), items) // repeatable order
//
// [New] derives a ChaCha8 key from an arbitrary string with BLAKE2b-256, so
// the same seed string always yields the same sequence on every platform.
package random
