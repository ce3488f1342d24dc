// Package deploy implements typed deployment-option chains for actors.
//
// A chain is an immutable, singly-linked sequence of configuration
// options terminated by Empty. Options are prepended in O(1) without
// touching the existing chain, so chains can share suffixes and be
// traversed concurrently without synchronization. When several options
// of the same kind are present, the one nearest the head wins.
package deploy
