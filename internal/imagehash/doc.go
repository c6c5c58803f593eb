// Package imagehash computes fixed-length perceptual fingerprints of still
// images and measures Hamming distance between them. One algorithm and bit
// length apply uniformly to a whole run; fingerprints from different
// algorithms or lengths refuse comparison.
package imagehash
