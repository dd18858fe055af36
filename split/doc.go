// Package split cuts the level catalogue into one document per level.
//
// The catalogue is the concatenation of every level, each introduced by a
// marker line holding its name:
//
//	<!-- tutorial-1 -->
//	<level version="3">
//	  ...
//	</level>
//	<!-- tutorial-2 -->
//	...
//
// Each level is stored with its marker line, and is additionally linked
// under the display name found in the world lookup document. Alias failures
// never abort a split.
package split
