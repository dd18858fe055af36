// Package encode encodes level documents to the compact record format.
//
// Each encodable element becomes one line:
//
//	0 13 3,4                      3 2         # <element id="t1" type="Transmitter" .../>
//
// The header `{id} {type} {position}` is padded to HeaderWidth columns, the
// type specific fields follow, and the whole record is padded to RecordWidth
// columns before a comment holding the source element. Identities are
// renumbered from 0 in first-seen order per document, see IDs.
//
// # Usage
//
//	doc, err := element.Parse(r)
//	err = encode.Encode(doc, os.Stdout)
//
//	// structured output
//	err = encode.Encode(doc, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//
// # Related Packages
//
//   - github.com/signadot/lvlx/element - level document model
//   - github.com/signadot/lvlx/query - record predicates for Where
package encode
