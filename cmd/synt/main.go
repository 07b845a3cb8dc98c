// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

package main

func main() {
	Execute()
}
