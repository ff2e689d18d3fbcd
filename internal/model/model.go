// Package model contains the domain records shared by the repository,
// service and handler layers.
package model
