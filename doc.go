// Package wot describes Web-of-Things-style hypermedia forms and
// (de)serializes them as flat JSON objects.
//
// Every record carries an extension slot: a type parameter whose value
// is flattened into the record's own JSON object, so protocol
// vocabularies (see the httpvocab subpackage) add fields without
// changing the record's schema. Deep extension stacks are expressed
// with heterogeneous lists from the hlist subpackage; hlist.Unit (also
// exported here as None) is the empty extension.
//
// # Quick Start
//
//	var f wot.Form[httpvocab.Form, httpvocab.Response]
//	if err := json.Unmarshal(data, &f); err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(f.Href, f.ContentType)
//	if f.Other.MethodName != nil {
//	    fmt.Println(*f.Other.MethodName)
//	}
//
// # Builders
//
// Each record has a chained builder whose zero value is ready to use.
// The Other combinator configures the extension without the outer
// builder knowing the extension's shape:
//
//	r := wot.NewExpectedResponseBuilder[httpvocab.Response, httpvocab.ResponseBuilder]().
//	    ContentType("application/ld+json").
//	    Other(func(b httpvocab.ResponseBuilder) httpvocab.ResponseBuilder {
//	        return b.StatusCodeValue(200)
//	    }).
//	    Build()
//
// # Errors
//
// Builders never fail. (De)serialization surfaces flatjson.Error values
// classified by kind: schema violations, unknown enumeration variants,
// key collisions between flattened siblings, non-object values in a
// flatten position, and malformed one-or-many fields. The package never
// logs and never partially constructs a record.
//
// # Concurrency
//
// All types are pure values: safe for concurrent reads, no process-wide
// state, no external resources. Concurrent writes to the same value
// require external synchronization.
//
// # Subpackages
//
//   - hlist: heterogeneous lists with the flat-object JSON contract
//   - flatjson: the flattening engine and error taxonomy
//   - httpvocab: HTTP vocabulary extension payloads (htv: fields)
package wot
