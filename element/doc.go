// Package element models the circuit elements of a level document.
//
// A level document is markup whose `element` nodes carry everything as
// attributes:
//
//	<element id="3" type="Receiver" position="4,2,0" elementGroup="Wave" target="1"/>
//
// # Usage
//
//	doc, err := element.Parse(r)
//	for _, el := range doc.Elements {
//	    t, err := element.ParseType(el.TypeName())
//	    ...
//	}
//
// The Type and Group enumerations are closed and ordered; their positions
// are the numbers written by the compact encoding.
//
// # Related Packages
//
//   - github.com/signadot/lvlx/encode - compact encoding of element documents
package element
