/*
Package provenance implements the weighted attribution graph of an asset.

Each asset owns a single graph. The asset owner appends edges, each
attributing a number of basis points either to a contributor or to a parent
asset. Both kinds of edges share a budget of 10000 basis points per asset.
Edges are never modified or removed. Once the owner finalizes the graph, no
more edges can be added.

A graph that was never written reads as empty and not finalized.
*/
package provenance
