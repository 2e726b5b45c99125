// Package qstrdefs holds the static string set of the runtime.
//
// The handle constants and Statics are generated from qstrdefs.hcl. Pass
// Statics to intern.New (or intern.Init) so the constants resolve.
package qstrdefs

//go:generate go run ../../cmd/qstr gen qstrdefs.hcl -o zqstrdefs.go
