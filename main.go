package main

import "github.com/pixelveil/pixelveil/cmd/pixelveil"

func main() { pixelveil.Execute() }
