// Package streamer provides the building blocks for composable, lazy text
// rendering: a Renderable contract that producers implement, a pull-based
// TokenStream they emit, a shared read-only Context carrying render options,
// stream combinators for separation and indentation, a priority protocol for
// minimal parenthesization of expression-like producers, and a Renderer that
// materializes a producer tree into strings, bytes, or incremental views.
//
// Producers compose by delegation: a composite builds its stream by splicing
// literal tokens around its children's streams, depth first, left to right.
// Nothing is computed until a consumer pulls, so peak memory tracks the
// delegation depth rather than the output size.
package streamer
