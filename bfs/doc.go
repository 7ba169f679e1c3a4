// Package bfs provides breadth-first search over a core.Adjacency,
// returning hop distances, parent roads and visit order.
//
// Roads are followed in adjacency (insertion) order, so every traversal of
// the same map is identical. WithContext makes a search cancellable between
// queue pops; PathTo rebuilds the fewest-roads path to any reached location.
//
// Components and Connected partition a location set into connected
// components. The command-line tool uses them to warn about maps whose
// barely connected network will be a forest, and PathTo to warn when the
// end cannot be reached from the start.
package bfs
