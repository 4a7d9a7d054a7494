// Package fileops provides filesystem primitives shared by the corpus and
// skills loaders: secure directory scanning confined to an os.Root boundary,
// path and content validation, and identifier sanitization for MCP tool names.
package fileops
