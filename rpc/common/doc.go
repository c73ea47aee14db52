// Package common provides configuration structures and logging utilities
// shared by the transport and client subpackages.
package common
