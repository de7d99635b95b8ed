/*
Package x contains the extensions the custody engine is assembled from.

Extensions implement common functionality (Handler, Decorator,
Initializer, etc.) and can be combined together to construct an
application. This package holds the authentication helpers that every
extension uses to learn who is calling.
*/
package x
