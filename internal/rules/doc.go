// Package rules implements the character sheet rules: attribute mutation,
// ability modifiers, class eligibility and skill point budgeting.
//
// Everything here is a pure function of its arguments. Nothing is cached;
// callers recompute derived figures from current state on every read.
package rules
