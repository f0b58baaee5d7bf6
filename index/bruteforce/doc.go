// Package bruteforce provides an exact nearest-neighbor index that scans all
// vectors and scores them by Euclidean distance. It serves as the reference
// oracle for tree-backed indexes and persists using the shared index format.
package bruteforce
