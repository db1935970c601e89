// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package uart

// PortPrefix is prepended to the port number to form the port name.
const PortPrefix = "COM"
