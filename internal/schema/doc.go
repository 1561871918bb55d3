// Package schema provides declarative option schemas for the confline
// tool. A schema is a YAML document that names the options a config
// file may carry, their types, defaults, expected counts and choice
// sets. Loading a schema validates it; building it wires a fully
// registered parser together with a Document that holds the typed
// storage every option binds to.
//
// The schema describes the *tool-side* declaration of options. The
// config input itself stays the line-oriented `name:value` format of
// package parser — schemas are YAML, config files are not.
//
// A minimal schema:
//
//	name: demo
//	options:
//	  - name: count
//	    type: int
//	    default: "1"
//	  - name: points
//	    type: ints
//	    expected: 3
//	  - name: mode
//	    type: choice
//	    choices: [fast, safe]
//
// Types: string, int, float, bool, strings, ints, floats, choice.
package schema
