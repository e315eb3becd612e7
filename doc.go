// Package lvtda is the input-validation layer of a topological data analysis
// toolkit: it checks estimator parameters, point cloud collections and
// persistence diagram collections before any homology is computed.
//
// What is in the box?
//
//	• Parameter tables: declared names, kinds, allowed sets, predicates,
//	  nested lists and nested maps, via validation.ValidateParams
//	• Point clouds: stacked 3D arrays or ragged sequences of 2D arrays,
//	  distance-matrix squareness, a finiteness policy and dimensionality
//	  warnings, via validation.CheckPointClouds
//	• Persistence diagrams: (birth, death, dimension) triples with integer
//	  non-negative dimensions and birth ≤ death, via validation.CheckDiagrams
//
// Everything is organized under a handful of packages:
//
//	ndarray/      dense float64 arrays, ragged sequences, nested-list decoding
//	validation/   the three validators, their options, errors and warnings
//	config/       YAML job files (viper) and YAML data files (yaml.v3)
//	cmd/tdacheck  command-line runner with zap logs and Prometheus metrics
//
// Quick example:
//
//	x, _ := ndarray.From3D([][][]float64{{{0, 1}, {1, 0}}})
//	_, err := validation.CheckPointClouds(x, validation.WithDistanceMatrices(true))
//	// err == nil: a single 2×2 distance matrix
//
//	go get github.com/katalvlaran/lvtda
package lvtda
