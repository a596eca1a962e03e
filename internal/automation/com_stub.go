//go:build !windows

package automation

import "errors"

type comFactory struct{}

// NewCOMFactory returns a factory that always fails: Word COM automation is
// only available on Windows.
func NewCOMFactory() Factory { return comFactory{} }

func (comFactory) Dispatch() (Application, error) {
	return nil, errors.New("Word COM automation is only available on Windows")
}
