//go:build tools

// Package tools pins the code generators behind the go:generate lines:
// enumer for the bridge and host state enums, mockgen for the device, host
// and plugin API mocks.
package tools

import (
	_ "github.com/dmarkham/enumer"
	_ "go.uber.org/mock/mockgen"
)
