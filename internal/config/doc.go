// Package config loads alignment settings from YAML.
//
// Example file:
//
//	version: "1"
//	heuristic: 0.1
//	tie_epsilon: 1e-9
//	max_rounds: 50
//	workers: 4
//	suggestions: 3
//	constraints:
//	  - type: ii-hyper
//	    weight: 1
//	  - type: rr-both
//	    weight: 0.5
//	  - type: ri-hypo
//	    weight: 1
//	    disabled: true
//
// Keys omitted from the file keep their Default values. Every listed
// constraint needs a known type code and an explicit weight; either defect
// is reported as ErrInvalid.
package config
