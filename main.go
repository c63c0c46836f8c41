package main

import "github.com/glimpse/glimpse/cmd/glimpse"

func main() { glimpse.Execute() }
