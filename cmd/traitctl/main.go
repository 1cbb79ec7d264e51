package main

import "github.com/KirkDiggler/talent-traits/cmd/traitctl/root"

func main() {
	root.Execute()
}
