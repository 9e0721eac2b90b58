//go:build rp2040

// Command rp2-link is the receive side of the inter-machine demo on a
// Pico. The link UART is serviced by the interrupt-driven uartx driver;
// local status goes out through the polled console on UART0. The two
// instances own disjoint register windows and never coordinate.
package main

import (
	"context"
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"serialio-go/mmio"
	"serialio-go/uart"
)

// RP2040 UART0 register window.
const uart0Base = 0x40034000

func main() {
	machine.UART0_TX_PIN.Configure(machine.PinConfig{Mode: machine.PinUART})

	console := uart.New(mmio.NewMem(uart0Base), uart.PL011())
	// clk_peri tracks the system clock under this runtime.
	err := console.Configure(uart.Config{BaudRate: 115200, ClockHz: machine.CPUFrequency()})
	if err != nil {
		return
	}

	link := uartx.UART1
	if err := link.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.UART1_TX_PIN,
		RX:       machine.UART1_RX_PIN,
	}); err != nil {
		console.WriteString("[pico] link configure failed\n")
		return
	}

	console.WriteString("[pico] link listener up\n")
	link.Write([]byte("hello from pico\n"))

	ctx := context.Background()
	for {
		b, err := link.RecvByteContext(ctx)
		if err != nil {
			continue
		}
		if b == '\n' {
			console.WriteByte('\r')
		}
		console.WriteByte(b)
	}
}
