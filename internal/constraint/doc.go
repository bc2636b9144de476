// Package constraint scores the candidate labels of pending nodes.
//
// The only constraint shipped is HyperHypo: a label T of source synset S
// gains weight when S's ancestors (descendants) that are already confirmed
// map into T's ancestors (descendants). Agreement is bucketed by depth and
// decays geometrically, so direct parents count most.
//
// An HH type selects which structure is compared on each side:
//
//	code       source     target     direction
//	ii-hyper   immediate  immediate  hypernyms
//	ri-hypo    recursive  immediate  hyponyms
//	rr-both    recursive  recursive  both, combined
//
// Immediate looks only at direct parents (children). Recursive hypernym
// structure is read from the unambiguous hypernym chain; when the chain is
// absent that side yields no hits. Recursive hyponym structure uses every
// descendant layer.
package constraint
