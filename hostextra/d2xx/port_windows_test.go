// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package d2xx

import "go.bug.st/serial/enumerator"

// The VCP driver reports the COM port; the tty list is not used.
func fakePorts(ports []*enumerator.PortDetails) {
}

func resetPorts() {
}
