//go:build linux

// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cli

import (
	"github.com/jongio/pslist/procfs"
	"github.com/jongio/pslist/proctable"
)

func defaultSource(root string) proctable.Source {
	return procfs.New(root)
}
