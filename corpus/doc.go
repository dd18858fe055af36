// Package corpus converts a whole level corpus: the catalogue is split into
// per level documents, which are then encoded one by one.
//
// A corpus is described by a YAML file:
//
//	levels: orig-data/levels.xml
//	worlds: orig-data/worlds.xml
//	out: levels
//	compact: compact
//	format: compact
//	jobs: 4
package corpus
