// Package node holds the per-synset label/weight model used during
// relaxation labeling.
//
// A Node carries the remaining target candidates (labels) of one pending
// source synset and a weight per label. The weights always sum to 1:
// AddWeight moves mass to one label by taking it evenly from all others,
// and Reset spreads it uniformly again.
package node
