// Package docs manages the on-disk Vaadin documentation corpus.
//
// The corpus lives under a single docs directory:
//
//	<docs_dir>/versions.yaml             version manifest
//	<docs_dir>/<major>/**/*.md           documentation pages per major version
//	<docs_dir>/<major>/api/<component>.yaml   Java API descriptions
//
// Pages carry YAML front-matter (title, component, kind, language). The
// Store loads each version lazily and caches parsed pages and API files.
package docs
