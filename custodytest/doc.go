/*
Package custodytest provides mocks and helpers for testing handlers, decorators
and extensions without running the whole application.
*/
package custodytest
