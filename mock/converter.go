package mock

import "github.com/yakumd/yakumd"

var _ yakumd.Converter = (*Converter)(nil)

// Converter is a mock implementation of yakumd.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
