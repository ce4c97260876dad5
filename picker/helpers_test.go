package picker_test

import (
	"github.com/fwojciec/rsdoc"
	"github.com/fwojciec/rsdoc/fs"
	"github.com/fwojciec/rsdoc/locate"
)

// newTestLocator returns a locator that never finds a toolchain.
func newTestLocator(runner rsdoc.CommandRunner) *locate.Locator {
	l := locate.NewLocator(runner, fs.NewProbe())
	l.Getenv = func(string) string { return "" }
	return l
}
