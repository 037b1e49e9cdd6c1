//go:build !linux

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"github.com/jongio/pslist/proctable"
	"github.com/jongio/pslist/procutil"
)

// Without a proc filesystem the root is ignored and gopsutil reads the host table.
func defaultSource(_ string) proctable.Source {
	return procutil.Source{}
}
