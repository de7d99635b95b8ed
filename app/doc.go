/*
Package app contains the pieces used to assemble the custody application
from its extensions: a Router dispatching messages to handlers, decorator
chains wrapping the router, and genesis loading feeding all initializers.
*/
package app
