// SPDX-License-Identifier: MIT
// Package: pathfinding/city
//
// errors.go - sentinel errors for the city package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w: "Generate: n=1 < min=2: <sentinel>".

package city

import "errors"

// ErrTooFewCities indicates that the requested number of cities is below MinCities.
var ErrTooFewCities = errors.New("city: too few cities")

// ErrInvalidGrid indicates a non-positive grid size.
var ErrInvalidGrid = errors.New("city: grid size must be positive")

// ErrInvalidProbability indicates an edge probability outside [0,1].
var ErrInvalidProbability = errors.New("city: probability out of range")

// ErrNeedRandSource indicates that Generate was called without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("city: rng is required")

// ErrEmptyTown indicates a town without cities.
var ErrEmptyTown = errors.New("city: empty town")

// ErrIDMismatch indicates that a City.ID differs from its index in the Town.
var ErrIDMismatch = errors.New("city: id does not match index")

// ErrUnknownCity indicates a neighbour id outside [0..n-1].
var ErrUnknownCity = errors.New("city: unknown neighbour id")

// ErrSelfAdjacency indicates that a city lists itself as a neighbour.
var ErrSelfAdjacency = errors.New("city: self adjacency")

// ErrDuplicateNeighbor indicates that a neighbour appears twice in one list.
var ErrDuplicateNeighbor = errors.New("city: duplicate neighbour")

// ErrAsymmetricAdjacency indicates u lists v but v does not list u.
var ErrAsymmetricAdjacency = errors.New("city: asymmetric adjacency")
