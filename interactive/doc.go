// Package interactive provides a full-screen terminal walk through the
// mansion. It drives the same mansion.Walker as the console walk, with
// arrow keys as an alternative to the e/d/s letters.
//
// Launch with: mansion tui
package interactive
