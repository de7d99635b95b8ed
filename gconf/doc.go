/*
Package gconf provides a toolset for managing an extension configuration.

Configuration is stored in the database as a singleton per extension, under
the "_c:<pkg>" key. Each extension declares its own configuration model and
loads it from the genesis file with InitConfig. Configuration must pass
validation before it is written.
*/
package gconf
