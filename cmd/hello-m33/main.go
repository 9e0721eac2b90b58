//go:build tinygo

// Command hello-m33 is the bare-metal console demo for the Cortex-M33
// reference board: a PL011 at 0x4000_0000 driven at 115200 baud from the
// 24 MHz peripheral clock. The bootstrap has already set up stack and
// clocks before main runs.
package main

import (
	"serialio-go/mmio"
	"serialio-go/uart"
)

const uartBase = 0x40000000

var delaySink uint32

// delay busy-waits; this board has no timer peripheral to lean on.
func delay(n uint32) {
	for i := uint32(0); i < n; i++ {
		delaySink = i
	}
}

func main() {
	console := uart.New(mmio.NewMem(uartBase), uart.PL011())
	if err := console.Configure(uart.DefaultConfig()); err != nil {
		return
	}

	console.WriteString("===========================================\n")
	console.WriteString("Cortex-M33 reference board\n")
	console.WriteString("PL011 console @ 115200 baud\n")
	console.WriteString("===========================================\n\n")
	console.WriteString("Starting counter demonstration...\n\n")

	counter := uint32(0)
	for {
		console.WriteString("Counter: ")
		console.WriteUint(counter)
		console.WriteString(" - board is running\n")

		counter++
		delay(2_000_000) // roughly a second between messages

		if counter > 100 {
			counter = 0
			console.WriteString("\n--- counter reset ---\n\n")
		}
	}
}
