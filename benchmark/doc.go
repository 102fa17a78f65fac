// Package benchmark compares pinelog against other Go loggers. It is a
// separate module so the comparison dependencies stay out of pinelog's
// go.mod.
//
//	go test -bench . -benchmem
package benchmark
