// Command finddup finds visually duplicate images and videos under a folder
// using perceptual fingerprints.
package main
