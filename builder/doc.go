// Package builder turns an N-Triples response body into a response.Response.
//
// A Builder normalizes the body, parses it into grom nodes, runs the
// configured decorator over every node and wraps the result:
//
//	b, err := builder.New(
//		builder.OptDecorator(grom.AliasDecorator{
//			"http://id.example.org/schema/Person": {"given_name": "personGivenName"},
//		}),
//	)
//	if err != nil {
//		// handle error
//	}
//	resp, err := b.Build(ctx, body)
//
// Builders are immutable after New and safe for concurrent use as long as
// the configured reader and decorator are.
package builder
