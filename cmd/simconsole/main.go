// Command simconsole runs the polled transmit driver against a simulated
// register file and streams whatever reaches the data register to stdout,
// so the full console path can be exercised on a host without hardware.
package main

import (
	"os"

	"serialio-go/regsim"
	"serialio-go/uart"
	"serialio-go/x/conv"
)

const consoleBase = 0x40000000

func main() {
	regs := uart.PL011()
	bus := regsim.New()
	bus.OnWrite(func(off, v uint32) {
		if off == regs.Data {
			os.Stdout.Write([]byte{byte(v)})
		}
	})

	console := uart.New(bus, regs)
	console.Settle = func(uint32) {} // nothing to settle in simulation
	if err := console.Configure(uart.Config{BaudRate: 115200, ClockHz: 24_000_000}); err != nil {
		println("configure:", err.Error())
		os.Exit(1)
	}

	var hex [8]byte
	console.WriteString("===========================================\n")
	console.WriteString("Simulated PL011 console @ 0x")
	console.WriteString(string(conv.U32Hex(hex[:], consoleBase)))
	console.WriteString("\n115200 baud, 24 MHz peripheral clock\n")
	console.WriteString("===========================================\n\n")

	for counter := uint32(0); counter < 10; counter++ {
		console.WriteString("Counter: ")
		console.WriteUint(counter)
		console.WriteString(" - driver is running\n")
	}
	console.WriteString("\ndone\n")
}
