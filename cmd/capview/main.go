package main

import (
	"os"

	"github.com/gdamore/tcell/v2"
)

func main() {
	// UTF-8 fallback keeps the box and arrow glyphs in the footer readable on
	// terminals with an unknown locale.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
