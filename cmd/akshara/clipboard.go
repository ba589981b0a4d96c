package main

import "github.com/atotto/clipboard"

// systemClipboard is the OS clipboard.
type systemClipboard struct{}

func (systemClipboard) WriteText(s string) error { return clipboard.WriteAll(s) }
