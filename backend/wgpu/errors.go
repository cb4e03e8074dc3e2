package wgpu

import "errors"

var (
	// ErrMockAdapter is returned when the instance found no real HAL
	// adapter and fell back to the mock adapter.
	ErrMockAdapter = errors.New("wgpu: no HAL adapter (mock instance)")

	// ErrShaderTranslation is returned when the probe shader cannot be
	// translated for the adapter's backend.
	ErrShaderTranslation = errors.New("wgpu: shader translation failed")
)
