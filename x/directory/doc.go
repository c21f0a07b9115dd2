/*
Package directory implements the registry of assets and contributors that the
attribution core consults.

An asset is an opaque, sequence generated identifier with a single owner. The
owner is the only address that can attribute the asset. A contributor is an
address that was granted the contributor capability by the directory admin.
Only contributors can be referenced by a provenance graph.

Other extensions use the Controller, which exposes narrow read only queries:
owner of an asset, asset existence and contributor capability.
*/
package directory
