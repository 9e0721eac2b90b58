//go:build tinygo

// Command machine-link is the two-UART inter-machine demo: one NS16550
// console for local status and a second, independently addressed NS16550
// wired to the hub that connects the other machines. Both ports are
// pre-configured by the platform, so only their data/status registers are
// touched.
package main

import (
	"serialio-go/mmio"
	"serialio-go/uart"
)

const (
	consoleBase = 0x10013000 // local debug console
	linkBase    = 0x10023000 // inter-machine hub
)

var delaySink uint32

func delay(n uint32) {
	for i := uint32(0); i < n; i++ {
		delaySink = i
	}
}

func main() {
	console := uart.New(mmio.NewMem(consoleBase), uart.NS16550())
	link := uart.New(mmio.NewMem(linkBase), uart.NS16550())
	if err := console.Configure(uart.Config{}); err != nil {
		return
	}
	if err := link.Configure(uart.Config{}); err != nil {
		return
	}

	console.WriteString("[machine1] starting...\n")

	for i := uint32(0); i < 3; i++ {
		console.WriteString("[machine1] sending message ")
		console.WriteUint(i)
		console.WriteString("\n")

		link.WriteString("MSG")
		link.WriteUint(i)
		link.WriteString(" from machine1\n")

		delay(100_000)
	}

	console.WriteString("[machine1] done sending\n")
	for {
		delay(1_000_000)
	}
}
