// Package utils provides decorators shared by every route of the custody
// application.
package utils
