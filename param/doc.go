// Package param implements kernel parameter objects and the factory that
// turns a value stored in a connection specification into a per-connection
// sampling strategy.
//
// Constant, Uniform and Normal satisfy dict.Parameter, so they can be stored
// opaquely in status dictionaries and handed across the scripting boundary.
// NewConnParameter dispatches on the stored alternative: scalars yield the
// same value for every connection, arrays yield one value per connection in
// order, and wrapped Parameter handles draw per connection.
package param
