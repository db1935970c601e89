// Copyright 2018 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package relayctl is for documentation only. Explains how to setup cgo and
// the FTDI D2XX driver used by the relaycontrol and relayscan tools.
//
// Debian
//
// This includes Raspbian and Ubuntu.
//
// You need to install pkg-config to enable cgo, run:
//
//  sudo apt install pkg-config
//
// Then install libftd2xx from http://www.ftdichip.com/Drivers/D2XX.htm so that
// ftd2xx.h and libftd2xx.so are found by the C compiler, usually in
// /usr/local/include and /usr/local/lib. libusb-1.0 is needed by relayscan:
//
//  sudo apt install libusb-1.0-0-dev
//
// MacOS
//
// You can install pkg-config via Homebrew (https://brew.sh). First install
// Homebrew.
//
// Either follow the official instructions at https://brew.sh to install system
// wide, or better install without root with the following steps. No root
// needed!
//
//  mkdir -p ~/homebrew
//  curl -sL https://github.com/Homebrew/brew/tarball/1.5.13 | tar xz --strip 1 -C ~/homebrew
//  export PATH="$PATH:$HOME/homebrew/bin"
//  echo 'export PATH="$PATH:$HOME/homebrew/bin"' >> ~/.bash_profile
//  brew upgrade
//
// and follow instructions. For example it may ask to run 'xcode-select
// -install'.
//
// Then install pkgconfig:
//
//  brew install pkgconfig libusb
//
// Then install libftd2xx from http://www.ftdichip.com/Drivers/D2XX.htm.
//
// Windows
//
// Install the D2XX driver; cgo is not needed, ftd2xx.dll is loaded at runtime.
//
// Configuration
//
// relaycontrol reads config.xml next to its executable:
//
//  <Settings>
//    <COMPort>3</COMPort>
//    <BaudRate>9600</BaudRate>
//    <Parity>None</Parity>
//    <DataBits>8</DataBits>
//    <StopBits>One</StopBits>
//  </Settings>
//
// Run relayscan to find the port number of the board.
package relayctl
